package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smolenkov/listshare/internal/common"
)

const helpHTML = `<!DOCTYPE html>
<html>
<head><title>ListShare</title></head>
<body>
<h1>ListShare</h1>
<p>Shared to-do lists over a JSON API. Authenticate with an
<code>Authorization: Bearer &lt;token&gt;</code> header.</p>
<ul>
<li>POST /action/signup - {name, username, password} → {token}</li>
<li>POST /action/login - {username, password} → {token}</li>
<li>GET /me - your profile</li>
<li>GET /lists - your lists</li>
<li>GET /list/:listId - one list with its todos</li>
<li>POST /action/create-list - {name} → {id}</li>
<li>POST /action/add-todo - {listId, name, done?} → {id}</li>
<li>POST /action/set-todo-done - {listId, todoId, done} → {id}</li>
<li>POST /action/invite - {listId, username}</li>
</ul>
</body>
</html>
`

// httpError maps store sentinel errors onto transport status codes.
// Anything unrecognized bubbles up as a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUsername),
		errors.Is(err, common.ErrNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong username/password")
	case errors.Is(err, common.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "you don't have access to this list")
	default:
		return err
	}
}

func (s *HTTPServer) home(c echo.Context) error {
	return c.HTML(http.StatusOK, helpHTML)
}

func (s *HTTPServer) me(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, userResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Token:    user.Token,
	})
}

func (s *HTTPServer) lists(c echo.Context) error {
	user := currentUser(c)

	lists, err := s.store.ListsForUser(c.Request().Context(), user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, lists)
}

func (s *HTTPServer) getList(c echo.Context) error {
	listID := c.Param("listId")
	if !slugRe.MatchString(listID) {
		// Matches the original router, where a malformed ID never
		// matched the route.
		return echo.ErrNotFound
	}

	user := currentUser(c)

	list, err := s.store.GetList(c.Request().Context(), listID, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) signup(c echo.Context) error {
	if currentUser(c) != nil {
		return echo.NewHTTPError(http.StatusForbidden, "you need to logout to be able to signup")
	}

	req := new(signupRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := s.store.CreateUser(c.Request().Context(), req.Name, req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: user.Token})
}

func (s *HTTPServer) login(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := s.store.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: user.Token})
}

func (s *HTTPServer) createList(c echo.Context) error {
	req := new(createListRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user := currentUser(c)

	list, err := s.store.CreateList(c.Request().Context(), req.Name, user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, idResponse{ID: list.ID})
}

func (s *HTTPServer) addTodo(c echo.Context) error {
	req := new(addTodoRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user := currentUser(c)

	todo, err := s.store.AddTodo(c.Request().Context(), user.ID, req.ListID, req.Name, req.Done)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, idResponse{ID: todo.ID})
}

func (s *HTTPServer) setTodoDone(c echo.Context) error {
	req := new(setTodoDoneRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user := currentUser(c)

	todo, err := s.store.SetTodoDone(c.Request().Context(), user.ID, req.ListID, req.TodoID, *req.Done)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, idResponse{ID: todo.ID})
}

func (s *HTTPServer) invite(c echo.Context) error {
	req := new(inviteRequest)
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user := currentUser(c)

	if err := s.store.InviteUser(c.Request().Context(), user.ID, req.ListID, req.Username); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
