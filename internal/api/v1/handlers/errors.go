package handlers

// Common error messages
const (
	ErrMsgInvalidID        = "Invalid id"
	ErrMsgInvalidReqBody   = "Invalid request body"
	ErrMsgInvalidReqFormat = "Invalid request format"
)

// Game error messages
const (
	ErrMsgGameNotFound     = "Game not found"
	ErrMsgGameCreateFailed = "Failed to create game"
	ErrMsgGameUpdateFailed = "Failed to update game"
	ErrMsgGameDeleteFailed = "Failed to delete game"
	ErrMsgGameListFailed   = "Failed to list games"
	ErrMsgGameNameRequired = "Game name is required"
)

// View error messages
const (
	ErrMsgViewNotFound      = "View not found"
	ErrMsgViewNameRequired  = "View name is required"
	ErrMsgViewCreateFailed  = "Failed to create view"
	ErrMsgViewUpdateFailed  = "Failed to update view"
	ErrMsgViewDeleteFailed  = "Failed to delete view"
	ErrMsgViewListFailed    = "Failed to list views"
	ErrMsgViewReorderFailed = "Failed to reorder views"
	ErrMsgViewBadConfig     = "Invalid view configuration"
)

// Catalog error messages
const (
	ErrMsgCatalogNotFound      = "Catalog item not found"
	ErrMsgCatalogNameRequired  = "Catalog item name is required"
	ErrMsgCatalogCreateFailed  = "Failed to create catalog item"
	ErrMsgCatalogUpdateFailed  = "Failed to update catalog item"
	ErrMsgCatalogDeleteFailed  = "Failed to delete catalog item"
	ErrMsgCatalogListFailed    = "Failed to list catalog items"
	ErrMsgCatalogReorderFailed = "Failed to reorder catalog items"
	ErrMsgUnknownCatalog       = "Unknown catalog"
)

// User error messages
const (
	ErrMsgInvalidCredentials = "Invalid username or password"
	ErrMsgUsernameRequired   = "Username is required"
	ErrMsgPasswordRequired   = "Password is required"
	ErrMsgUserNotFound       = "User not found"
	ErrMsgCreateUserFailed   = "Failed to create user"
	ErrMsgUpdateUserFailed   = "Failed to update user"
	ErrMsgDeleteUserFailed   = "Failed to delete user"
	ErrMsgGetUsersFailed     = "Failed to get users"
)

// CSV error messages
const (
	ErrMsgExportFailed = "Failed to export games"
	ErrMsgImportFailed = "Failed to import games"
)
