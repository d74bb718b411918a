package httpserver

// Request bodies, validated at the boundary so the store only ever sees
// well-formed, strongly-typed arguments. The rules mirror the original
// service: usernames are at least 3 characters of letters, digits, "-"
// and "_"; passwords at least 6 characters; IDs are short lowercase
// alphanumeric slugs.

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3,username"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createListRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type addTodoRequest struct {
	ListID string `json:"listId" validate:"required,slug"`
	Name   string `json:"name" validate:"required,min=1"`
	Done   bool   `json:"done"`
}

type setTodoDoneRequest struct {
	ListID string `json:"listId" validate:"required,slug"`
	TodoID string `json:"todoId" validate:"required,slug"`
	Done   *bool  `json:"done" validate:"required"`
}

type inviteRequest struct {
	ListID   string `json:"listId" validate:"required,slug"`
	Username string `json:"username" validate:"required"`
}

// Responses.

type tokenResponse struct {
	Token string `json:"token"`
}

type idResponse struct {
	ID string `json:"id"`
}

// userResponse is the caller's own profile. The password hash is never
// exposed; the token is, because it belongs to the caller.
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
