package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/handlers"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"
	"github.com/elevateplus/coaching-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	. "github.com/smartystreets/goconvey/convey"
)

type stubScoringUseCase struct {
	scorecard    []entities.KPI
	scorecardErr error
	log          *entities.CoachingLog
	submitErr    error
	gotRequest   *usecases.SubmitScoresRequest
}

func (s *stubScoringUseCase) GetScorecard(context.Context, *entities.User, string) ([]entities.KPI, error) {
	return s.scorecard, s.scorecardErr
}

func (s *stubScoringUseCase) SubmitScores(_ context.Context, _ *entities.User, _ string, req usecases.SubmitScoresRequest) (*entities.CoachingLog, error) {
	s.gotRequest = &req
	return s.log, s.submitErr
}

func newScoringApp(actor *entities.User, uc usecases.ScoringUseCase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.SetCurrentUser(actor))

	h := handlers.NewScoringHandler(uc)
	app.Get("/api/v1/agents/:id/scorecard", h.GetScorecard)
	app.Post("/api/v1/agents/:id/scores", h.SubmitScores)
	return app
}

func TestScoringHandler(t *testing.T) {
	manager := &entities.User{UserID: "manager-1", FullName: "Dana Coach", Role: entities.RoleManager}

	Convey("Given the scoring routes", t, func() {
		Convey("When a valid submission is posted", func() {
			stub := &stubScoringUseCase{
				log: &entities.CoachingLog{
					LogID:         "log-1",
					AgentID:       "agent-1",
					CoachID:       manager.UserID,
					OverallRating: 3.80,
					ActionPlan:    entities.DefaultActionPlan,
				},
			}
			app := newScoringApp(manager, stub)

			body, _ := json.Marshal(map[string]interface{}{
				"action_plan": "",
				"scores": []map[string]interface{}{
					{"kpi_id": "1c7a9f44-2b1a-4c52-b2fd-51a3a1f08a01", "score": 88, "target": 88, "weight": 70},
				},
			})
			req := httptest.NewRequest(fiber.MethodPost, "/api/v1/agents/agent-1/scores", bytes.NewReader(body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)

			Convey("Then it returns 201 with the recorded log", func() {
				So(resp.StatusCode, ShouldEqual, fiber.StatusCreated)

				var payload struct {
					Data entities.CoachingLog `json:"data"`
				}
				So(json.NewDecoder(resp.Body).Decode(&payload), ShouldBeNil)
				So(payload.Data.OverallRating, ShouldEqual, 3.80)
				So(stub.gotRequest, ShouldNotBeNil)
				So(len(stub.gotRequest.Scores), ShouldEqual, 1)
			})
		})

		Convey("When the engine refuses an all-zero-weight submission", func() {
			stub := &stubScoringUseCase{
				submitErr: validation.NewMessageError("Please set weight for at least one KPI."),
			}
			app := newScoringApp(manager, stub)

			req := httptest.NewRequest(fiber.MethodPost, "/api/v1/agents/agent-1/scores", bytes.NewReader([]byte(`{"scores":[]}`)))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)

			Convey("Then the user gets a 422 with the message", func() {
				So(resp.StatusCode, ShouldEqual, fiber.StatusUnprocessableEntity)

				var payload map[string]interface{}
				So(json.NewDecoder(resp.Body).Decode(&payload), ShouldBeNil)
				So(payload["error"], ShouldEqual, "Please set weight for at least one KPI.")
			})
		})

		Convey("When the campaign has no enabled KPIs", func() {
			stub := &stubScoringUseCase{scorecardErr: usecases.ErrEmptyCatalog}
			app := newScoringApp(manager, stub)

			req := httptest.NewRequest(fiber.MethodGet, "/api/v1/agents/agent-1/scorecard", nil)
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)

			Convey("Then the blocking warning surfaces as 409", func() {
				So(resp.StatusCode, ShouldEqual, fiber.StatusConflict)
			})
		})

		Convey("When the actor does not manage the agent", func() {
			stub := &stubScoringUseCase{submitErr: usecases.ErrForbidden}
			app := newScoringApp(manager, stub)

			req := httptest.NewRequest(fiber.MethodPost, "/api/v1/agents/agent-9/scores", bytes.NewReader([]byte(`{"scores":[]}`)))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)

			Convey("Then access is refused with 403", func() {
				So(resp.StatusCode, ShouldEqual, fiber.StatusForbidden)
			})
		})
	})
}
