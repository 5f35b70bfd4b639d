package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/elevateplus/coaching-api/internal/application/auth"
	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/handlers"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
	. "github.com/smartystreets/goconvey/convey"
)

type stubUserUseCase struct {
	users map[string]*entities.User
}

func (s *stubUserUseCase) CreateUser(context.Context, usecases.CreateUserRequest) (*entities.User, error) {
	return nil, nil
}

func (s *stubUserUseCase) GetUsers(context.Context, int, int, string, string) ([]entities.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserUseCase) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, usecases.ErrNotFound
}

func (s *stubUserUseCase) UpdateUser(context.Context, string, usecases.UpdateUserRequest) (*entities.User, error) {
	return nil, nil
}

func (s *stubUserUseCase) SendPasswordReset(string) error { return nil }

// newUserApp registers the user routes in router order: admin gates sit on
// each management route, never on the group, so the self-profile read
// stays reachable for every authenticated role.
func newUserApp(actor *entities.User, uc usecases.UserUseCase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.SetCurrentUser(actor))

	h := handlers.NewUserHandler(uc)
	manageUsers := middleware.RequireAction(auth.ActionManageUsers)
	users := app.Group("/api/v1/users")
	users.Post("/", manageUsers, h.CreateUser)
	users.Get("/", manageUsers, h.GetUsers)
	users.Put("/:id", manageUsers, h.UpdateUser)
	users.Get("/:id", h.GetUser)
	return app
}

func TestUserRoutes(t *testing.T) {
	agent := &entities.User{UserID: "agent-1", FullName: "Sam Agent", Role: entities.RoleAgent}
	admin := &entities.User{UserID: "admin-1", FullName: "Alex Admin", Role: entities.RoleAdmin}
	uc := &stubUserUseCase{users: map[string]*entities.User{
		agent.UserID: agent,
		admin.UserID: admin,
	}}

	Convey("Given the user routes", t, func() {
		Convey("When an agent reads their own profile", func() {
			app := newUserApp(agent, uc)

			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/users/agent-1", nil)
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)

			Convey("Then the profile is returned", func() {
				So(resp.StatusCode, ShouldEqual, fiber.StatusOK)

				var payload struct {
					Data entities.User `json:"data"`
				}
				So(json.NewDecoder(resp.Body).Decode(&payload), ShouldBeNil)
				So(payload.Data.UserID, ShouldEqual, "agent-1")
			})
		})

		Convey("When an agent reads someone else's profile", func() {
			app := newUserApp(agent, uc)

			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/users/admin-1", nil)
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, fiber.StatusForbidden)
		})

		Convey("When an agent lists users", func() {
			app := newUserApp(agent, uc)

			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/users/", nil)
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, fiber.StatusForbidden)
		})

		Convey("When an admin reads an agent's profile", func() {
			app := newUserApp(admin, uc)

			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/users/agent-1", nil)
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
		})
	})
}
