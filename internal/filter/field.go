// Package filter implements the view filter/sort model for the game list:
// the filterable field set, the operator compatibility matrix, evaluation of
// a view configuration against in-memory game records, value normalization
// for persisted filters, and stable multi-key sorting.
package filter

import (
	"strings"
	"time"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// Field identifies a filterable attribute on a game record
type Field string

// Filterable fields. The names match the values persisted by view
// configurations.
const (
	FieldName        Field = "Name"
	FieldComment     Field = "Comment"
	FieldDescription Field = "Description"

	FieldStatusID       Field = "StatusId"
	FieldPlatformID     Field = "PlatformId"
	FieldPlayWithID     Field = "PlayWithId"
	FieldPlayedStatusID Field = "PlayedStatusId"

	FieldScore      Field = "Score"
	FieldGrade      Field = "Grade"
	FieldCritic     Field = "Critic"
	FieldStory      Field = "Story"
	FieldCompletion Field = "Completion"

	FieldReleased    Field = "Released"
	FieldStarted     Field = "Started"
	FieldFinished    Field = "Finished"
	FieldReleaseDate Field = "ReleaseDate"

	FieldCreatedAt Field = "CreatedAt"
	FieldUpdatedAt Field = "UpdatedAt"

	FieldLogo  Field = "Logo"
	FieldCover Field = "Cover"
)

// Class groups fields that share value semantics and legal operators
type Class int

// Field classes
const (
	// ClassText covers free-text identity fields compared case-insensitively
	ClassText Class = iota
	// ClassRelation covers numeric foreign-key fields
	ClassRelation
	// ClassScore covers numeric score fields
	ClassScore
	// ClassDate covers date fields compared at day granularity
	ClassDate
	// ClassDateTime covers timestamp fields compared at exact instants
	ClassDateTime
	// ClassOther covers the remaining fields and accepts the full operator set
	ClassOther
)

var fieldClasses = map[Field]Class{
	FieldName:        ClassText,
	FieldComment:     ClassText,
	FieldDescription: ClassText,

	FieldStatusID:       ClassRelation,
	FieldPlatformID:     ClassRelation,
	FieldPlayWithID:     ClassRelation,
	FieldPlayedStatusID: ClassRelation,

	FieldScore:      ClassScore,
	FieldGrade:      ClassScore,
	FieldCritic:     ClassScore,
	FieldStory:      ClassScore,
	FieldCompletion: ClassScore,

	FieldReleased:    ClassDate,
	FieldStarted:     ClassDate,
	FieldFinished:    ClassDate,
	FieldReleaseDate: ClassDate,

	FieldCreatedAt: ClassDateTime,
	FieldUpdatedAt: ClassDateTime,

	FieldLogo:  ClassOther,
	FieldCover: ClassOther,
}

// Class returns the field's class and whether the field is known
func (f Field) Class() (Class, bool) {
	c, ok := fieldClasses[f]
	return c, ok
}

type valueKind int

const (
	kindText valueKind = iota
	kindNumber
	kindDate
	kindDateTime
)

// fieldValue is the typed view of one game attribute used during evaluation.
// null marks absent values (nil pointers, zero timestamps).
type fieldValue struct {
	kind valueKind
	null bool
	str  string
	num  float64
	t    time.Time
}

func textValue(s *string) fieldValue {
	if s == nil {
		return fieldValue{kind: kindText, null: true}
	}
	return fieldValue{kind: kindText, str: *s}
}

func numberValue(f *float64) fieldValue {
	if f == nil {
		return fieldValue{kind: kindNumber, null: true}
	}
	return fieldValue{kind: kindNumber, num: *f}
}

func relationValue(id *uint) fieldValue {
	if id == nil {
		return fieldValue{kind: kindNumber, null: true}
	}
	return fieldValue{kind: kindNumber, num: float64(*id)}
}

func dateValue(t *time.Time) fieldValue {
	if t == nil || t.IsZero() {
		return fieldValue{kind: kindDate, null: true}
	}
	return fieldValue{kind: kindDate, t: *t}
}

func datetimeValue(t time.Time) fieldValue {
	if t.IsZero() {
		return fieldValue{kind: kindDateTime, null: true}
	}
	return fieldValue{kind: kindDateTime, t: t}
}

// accessors maps every known field to a typed getter so evaluation never
// reflects over record fields
var accessors = map[Field]func(g *models.Game) fieldValue{
	FieldName:        func(g *models.Game) fieldValue { return textValue(&g.Name) },
	FieldComment:     func(g *models.Game) fieldValue { return textValue(g.Comment) },
	FieldDescription: func(g *models.Game) fieldValue { return textValue(g.Description) },

	FieldStatusID:       func(g *models.Game) fieldValue { return relationValue(g.StatusID) },
	FieldPlatformID:     func(g *models.Game) fieldValue { return relationValue(g.PlatformID) },
	FieldPlayWithID:     func(g *models.Game) fieldValue { return relationValue(g.PlayWithID) },
	FieldPlayedStatusID: func(g *models.Game) fieldValue { return relationValue(g.PlayedStatusID) },

	FieldScore:      func(g *models.Game) fieldValue { return numberValue(g.Score) },
	FieldGrade:      func(g *models.Game) fieldValue { return numberValue(g.Grade) },
	FieldCritic:     func(g *models.Game) fieldValue { return numberValue(g.Critic) },
	FieldStory:      func(g *models.Game) fieldValue { return numberValue(g.Story) },
	FieldCompletion: func(g *models.Game) fieldValue { return numberValue(g.Completion) },

	FieldReleased:    func(g *models.Game) fieldValue { return dateValue(g.Released) },
	FieldStarted:     func(g *models.Game) fieldValue { return dateValue(g.Started) },
	FieldFinished:    func(g *models.Game) fieldValue { return dateValue(g.Finished) },
	FieldReleaseDate: func(g *models.Game) fieldValue { return dateValue(g.ReleaseDate) },

	FieldCreatedAt: func(g *models.Game) fieldValue { return datetimeValue(g.CreatedAt) },
	FieldUpdatedAt: func(g *models.Game) fieldValue { return datetimeValue(g.UpdatedAt) },

	FieldLogo:  func(g *models.Game) fieldValue { return textValue(g.Logo) },
	FieldCover: func(g *models.Game) fieldValue { return textValue(g.Cover) },
}

// fieldValueOf resolves a field on a record. Unknown fields yield a null
// value so evaluation degrades instead of erroring.
func fieldValueOf(g *models.Game, f Field) fieldValue {
	if acc, ok := accessors[f]; ok {
		return acc(g)
	}
	return fieldValue{kind: kindText, null: true}
}

// empty reports whether the value counts as empty for IsEmpty/IsNotEmpty
func (v fieldValue) empty() bool {
	if v.null {
		return true
	}
	if v.kind == kindText {
		return strings.TrimSpace(v.str) == ""
	}
	return false
}
