// Package client provides the Go client for the games database API: a typed
// method per endpoint over a session layer that handles bearer
// authentication, timeouts and cancellation.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/routes"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/filter"
	"github.com/David-H-Afonso/gamesdatabase/internal/types"
)

// Client is the interface for interacting with the API
type Client interface {
	// Login authenticates and stores the bearer token for later requests
	Login(ctx context.Context, username, password string) (*types.LoginResponse, error)
	// Logout drops the stored token and cancels every in-flight request
	Logout()
	// HealthCheck checks service liveness
	HealthCheck(ctx context.Context) error

	// Games
	ListGames(ctx context.Context, params *models.GameQueryParameters) (*types.ListResponse[models.Game], error)
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	CreateGame(ctx context.Context, game *models.Game) (*models.Game, error)
	UpdateGame(ctx context.Context, id uint, game *models.Game) (*models.Game, error)
	DeleteGame(ctx context.Context, id uint) error
	ExportCSV(ctx context.Context) ([]byte, error)
	ImportCSV(ctx context.Context, snapshot []byte) (*ImportResult, error)

	// Views
	ListViews(ctx context.Context) (*types.ListResponse[models.GameView], error)
	CreateView(ctx context.Context, req *ViewRequest) (*models.GameView, error)
	UpdateView(ctx context.Context, id uint, req *ViewRequest) (*models.GameView, error)
	DeleteView(ctx context.Context, id uint) error
	ReorderViews(ctx context.Context, ids []uint) error

	// Catalogs
	ListPlatforms(ctx context.Context) (*types.ListResponse[models.Platform], error)
	CreatePlatform(ctx context.Context, item *models.Platform) (*models.Platform, error)
	UpdatePlatform(ctx context.Context, id uint, item *models.Platform) (*models.Platform, error)
	DeletePlatform(ctx context.Context, id uint) error
	ReorderPlatforms(ctx context.Context, ids []uint) error

	ListStatuses(ctx context.Context) (*types.ListResponse[models.Status], error)
	CreateStatus(ctx context.Context, item *models.Status) (*models.Status, error)
	UpdateStatus(ctx context.Context, id uint, item *models.Status) (*models.Status, error)
	DeleteStatus(ctx context.Context, id uint) error
	ReorderStatuses(ctx context.Context, ids []uint) error

	ListPlayWith(ctx context.Context) (*types.ListResponse[models.PlayWith], error)
	CreatePlayWith(ctx context.Context, item *models.PlayWith) (*models.PlayWith, error)
	UpdatePlayWith(ctx context.Context, id uint, item *models.PlayWith) (*models.PlayWith, error)
	DeletePlayWith(ctx context.Context, id uint) error
	ReorderPlayWith(ctx context.Context, ids []uint) error

	ListPlayedStatuses(ctx context.Context) (*types.ListResponse[models.PlayedStatus], error)
	CreatePlayedStatus(ctx context.Context, item *models.PlayedStatus) (*models.PlayedStatus, error)
	UpdatePlayedStatus(ctx context.Context, id uint, item *models.PlayedStatus) (*models.PlayedStatus, error)
	DeletePlayedStatus(ctx context.Context, id uint) error
	ReorderPlayedStatuses(ctx context.Context, ids []uint) error

	// Users (admin)
	ListUsers(ctx context.Context) (*types.ListResponse[models.User], error)
	CreateUser(ctx context.Context, req *UserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, req *UserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

// ViewRequest is the create/update payload for a saved view
type ViewRequest struct {
	Name          string                    `json:"name"`
	IsPublic      bool                      `json:"is_public"`
	Configuration *filter.ViewConfiguration `json:"configuration,omitempty"`
}

// UserRequest is the create/update payload for user management
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// ImportResult reports the outcome of a CSV import
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// tokenSetter is implemented by token stores that can accept a new token
type tokenSetter interface {
	Set(token string)
}

// APIClient implements Client over a SessionManager
type APIClient struct {
	session *SessionManager
	tokens  TokenStore
}

var _ Client = &APIClient{}

// NewClient creates a new API client. When opts.Tokens is nil an in-memory
// store is used so Login can persist the issued token.
func NewClient(opts *SessionOptions) (*APIClient, error) {
	if opts == nil {
		opts = &SessionOptions{}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = routes.DefaultBaseURL
	}
	if opts.Tokens == nil {
		opts.Tokens = &MemoryTokenStore{}
	}

	session, err := NewSessionManager(opts)
	if err != nil {
		return nil, err
	}
	return &APIClient{session: session, tokens: opts.Tokens}, nil
}

// Session exposes the underlying session manager, mainly so applications can
// wire cancellation into their own lifecycle.
func (c *APIClient) Session() *SessionManager {
	return c.session
}

// do performs a request and decodes a JSON response into out when non-nil
func (c *APIClient) do(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	resp, err := c.session.Do(ctx, endpoint, opts)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// Login authenticates and stores the bearer token for later requests
func (c *APIClient) Login(ctx context.Context, username, password string) (*types.LoginResponse, error) {
	var result types.LoginResponse
	err := c.do(ctx, routes.LoginURL(), &RequestOptions{
		Method: http.MethodPost,
		Body:   types.LoginRequest{Username: username, Password: password},
	}, &result)
	if err != nil {
		return nil, err
	}
	if setter, ok := c.tokens.(tokenSetter); ok {
		setter.Set(result.Token)
	}
	c.session.Reset()
	return &result, nil
}

// Logout drops the stored token and cancels every in-flight request
func (c *APIClient) Logout() {
	c.session.CancelAll()
	c.tokens.Clear()
}

// HealthCheck checks service liveness
func (c *APIClient) HealthCheck(ctx context.Context) error {
	return c.do(ctx, routes.HealthCheckURL(), nil, nil)
}

// ListGames returns one page of games. Quick filters, view selection and
// pagination all travel in params.
func (c *APIClient) ListGames(ctx context.Context, params *models.GameQueryParameters) (*types.ListResponse[models.Game], error) {
	var result types.ListResponse[models.Game]
	err := c.do(ctx, routes.GamesURL(nil), &RequestOptions{Query: QueryValues(params)}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetGame retrieves a single game
func (c *APIClient) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var result models.Game
	if err := c.do(ctx, routes.GameURL(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateGame adds a game to the collection
func (c *APIClient) CreateGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	if game == nil {
		return nil, fmt.Errorf("game cannot be nil")
	}
	var result models.Game
	err := c.do(ctx, routes.GamesURL(nil), &RequestOptions{
		Method: http.MethodPost,
		Body:   game,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateGame modifies a game
func (c *APIClient) UpdateGame(ctx context.Context, id uint, game *models.Game) (*models.Game, error) {
	if game == nil {
		return nil, fmt.Errorf("game cannot be nil")
	}
	var result models.Game
	err := c.do(ctx, routes.GameURL(id), &RequestOptions{
		Method: http.MethodPut,
		Body:   game,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteGame removes a game
func (c *APIClient) DeleteGame(ctx context.Context, id uint) error {
	return c.do(ctx, routes.GameURL(id), &RequestOptions{Method: http.MethodDelete}, nil)
}

// ExportCSV downloads the full collection as a CSV snapshot
func (c *APIClient) ExportCSV(ctx context.Context) ([]byte, error) {
	resp, err := c.session.Do(ctx, routes.GamesExportURL(), nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ImportCSV uploads a CSV snapshot for import
func (c *APIClient) ImportCSV(ctx context.Context, snapshot []byte) (*ImportResult, error) {
	var result ImportResult
	err := c.do(ctx, routes.GamesImportURL(), &RequestOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "text/csv"},
		Body:    snapshot,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListViews returns the views visible to the user
func (c *APIClient) ListViews(ctx context.Context) (*types.ListResponse[models.GameView], error) {
	var result types.ListResponse[models.GameView]
	if err := c.do(ctx, routes.ViewsURL(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateView saves a new named view
func (c *APIClient) CreateView(ctx context.Context, req *ViewRequest) (*models.GameView, error) {
	if req == nil {
		return nil, fmt.Errorf("view request cannot be nil")
	}
	var result models.GameView
	err := c.do(ctx, routes.ViewsURL(), &RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateView modifies a view
func (c *APIClient) UpdateView(ctx context.Context, id uint, req *ViewRequest) (*models.GameView, error) {
	if req == nil {
		return nil, fmt.Errorf("view request cannot be nil")
	}
	var result models.GameView
	err := c.do(ctx, routes.ViewURL(id), &RequestOptions{
		Method: http.MethodPut,
		Body:   req,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteView removes a view
func (c *APIClient) DeleteView(ctx context.Context, id uint) error {
	return c.do(ctx, routes.ViewURL(id), &RequestOptions{Method: http.MethodDelete}, nil)
}

// ReorderViews rewrites the display order of the user's views
func (c *APIClient) ReorderViews(ctx context.Context, ids []uint) error {
	return c.do(ctx, routes.ViewsReorderURL(), &RequestOptions{
		Method: http.MethodPut,
		Body:   types.ReorderRequest{IDs: ids},
	}, nil)
}

// Catalog endpoints share one shape; these helpers keep the per-catalog
// methods thin.

func listCatalog[T any](ctx context.Context, c *APIClient, path string) (*types.ListResponse[T], error) {
	var result types.ListResponse[T]
	if err := c.do(ctx, routes.CatalogURL(path), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func createCatalog[T any](ctx context.Context, c *APIClient, path string, item *T) (*T, error) {
	if item == nil {
		return nil, fmt.Errorf("catalog item cannot be nil")
	}
	var result T
	err := c.do(ctx, routes.CatalogURL(path), &RequestOptions{
		Method: http.MethodPost,
		Body:   item,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func updateCatalog[T any](ctx context.Context, c *APIClient, path string, id uint, item *T) (*T, error) {
	if item == nil {
		return nil, fmt.Errorf("catalog item cannot be nil")
	}
	var result T
	err := c.do(ctx, routes.CatalogItemURL(path, id), &RequestOptions{
		Method: http.MethodPut,
		Body:   item,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func deleteCatalog(ctx context.Context, c *APIClient, path string, id uint) error {
	return c.do(ctx, routes.CatalogItemURL(path, id), &RequestOptions{Method: http.MethodDelete}, nil)
}

func reorderCatalog(ctx context.Context, c *APIClient, path string, ids []uint) error {
	return c.do(ctx, routes.CatalogReorderURL(path), &RequestOptions{
		Method: http.MethodPut,
		Body:   types.ReorderRequest{IDs: ids},
	}, nil)
}

// ListPlatforms returns the user's platforms
func (c *APIClient) ListPlatforms(ctx context.Context) (*types.ListResponse[models.Platform], error) {
	return listCatalog[models.Platform](ctx, c, routes.PlatformsPath)
}

// CreatePlatform creates a platform
func (c *APIClient) CreatePlatform(ctx context.Context, item *models.Platform) (*models.Platform, error) {
	return createCatalog(ctx, c, routes.PlatformsPath, item)
}

// UpdatePlatform modifies a platform
func (c *APIClient) UpdatePlatform(ctx context.Context, id uint, item *models.Platform) (*models.Platform, error) {
	return updateCatalog(ctx, c, routes.PlatformsPath, id, item)
}

// DeletePlatform removes a platform
func (c *APIClient) DeletePlatform(ctx context.Context, id uint) error {
	return deleteCatalog(ctx, c, routes.PlatformsPath, id)
}

// ReorderPlatforms rewrites platform display order
func (c *APIClient) ReorderPlatforms(ctx context.Context, ids []uint) error {
	return reorderCatalog(ctx, c, routes.PlatformsPath, ids)
}

// ListStatuses returns the user's statuses
func (c *APIClient) ListStatuses(ctx context.Context) (*types.ListResponse[models.Status], error) {
	return listCatalog[models.Status](ctx, c, routes.StatusesPath)
}

// CreateStatus creates a status
func (c *APIClient) CreateStatus(ctx context.Context, item *models.Status) (*models.Status, error) {
	return createCatalog(ctx, c, routes.StatusesPath, item)
}

// UpdateStatus modifies a status
func (c *APIClient) UpdateStatus(ctx context.Context, id uint, item *models.Status) (*models.Status, error) {
	return updateCatalog(ctx, c, routes.StatusesPath, id, item)
}

// DeleteStatus removes a status
func (c *APIClient) DeleteStatus(ctx context.Context, id uint) error {
	return deleteCatalog(ctx, c, routes.StatusesPath, id)
}

// ReorderStatuses rewrites status display order
func (c *APIClient) ReorderStatuses(ctx context.Context, ids []uint) error {
	return reorderCatalog(ctx, c, routes.StatusesPath, ids)
}

// ListPlayWith returns the user's play-with options
func (c *APIClient) ListPlayWith(ctx context.Context) (*types.ListResponse[models.PlayWith], error) {
	return listCatalog[models.PlayWith](ctx, c, routes.PlayWithPath)
}

// CreatePlayWith creates a play-with option
func (c *APIClient) CreatePlayWith(ctx context.Context, item *models.PlayWith) (*models.PlayWith, error) {
	return createCatalog(ctx, c, routes.PlayWithPath, item)
}

// UpdatePlayWith modifies a play-with option
func (c *APIClient) UpdatePlayWith(ctx context.Context, id uint, item *models.PlayWith) (*models.PlayWith, error) {
	return updateCatalog(ctx, c, routes.PlayWithPath, id, item)
}

// DeletePlayWith removes a play-with option
func (c *APIClient) DeletePlayWith(ctx context.Context, id uint) error {
	return deleteCatalog(ctx, c, routes.PlayWithPath, id)
}

// ReorderPlayWith rewrites play-with display order
func (c *APIClient) ReorderPlayWith(ctx context.Context, ids []uint) error {
	return reorderCatalog(ctx, c, routes.PlayWithPath, ids)
}

// ListPlayedStatuses returns the user's played statuses
func (c *APIClient) ListPlayedStatuses(ctx context.Context) (*types.ListResponse[models.PlayedStatus], error) {
	return listCatalog[models.PlayedStatus](ctx, c, routes.PlayedStatusesPath)
}

// CreatePlayedStatus creates a played status
func (c *APIClient) CreatePlayedStatus(ctx context.Context, item *models.PlayedStatus) (*models.PlayedStatus, error) {
	return createCatalog(ctx, c, routes.PlayedStatusesPath, item)
}

// UpdatePlayedStatus modifies a played status
func (c *APIClient) UpdatePlayedStatus(ctx context.Context, id uint, item *models.PlayedStatus) (*models.PlayedStatus, error) {
	return updateCatalog(ctx, c, routes.PlayedStatusesPath, id, item)
}

// DeletePlayedStatus removes a played status
func (c *APIClient) DeletePlayedStatus(ctx context.Context, id uint) error {
	return deleteCatalog(ctx, c, routes.PlayedStatusesPath, id)
}

// ReorderPlayedStatuses rewrites played status display order
func (c *APIClient) ReorderPlayedStatuses(ctx context.Context, ids []uint) error {
	return reorderCatalog(ctx, c, routes.PlayedStatusesPath, ids)
}

// ListUsers returns all users. Admin only.
func (c *APIClient) ListUsers(ctx context.Context) (*types.ListResponse[models.User], error) {
	var result types.ListResponse[models.User]
	if err := c.do(ctx, routes.UsersURL(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUser creates an account. Admin only.
func (c *APIClient) CreateUser(ctx context.Context, req *UserRequest) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("user request cannot be nil")
	}
	var result models.User
	err := c.do(ctx, routes.UsersURL(), &RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUser modifies an account. Admin only.
func (c *APIClient) UpdateUser(ctx context.Context, id uint, req *UserRequest) (*models.User, error) {
	if req == nil {
		return nil, fmt.Errorf("user request cannot be nil")
	}
	var result models.User
	err := c.do(ctx, routes.UserURL(id), &RequestOptions{
		Method: http.MethodPut,
		Body:   req,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser removes an account. Admin only.
func (c *APIClient) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, routes.UserURL(id), &RequestOptions{Method: http.MethodDelete}, nil)
}
