package quiz

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"quizforge/internal/middleware"
	"quizforge/internal/model"
	"quizforge/internal/telemetry"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type generateRequest struct {
	Content    string `json:"content"`
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
	Subject    string `json:"subject"`
}

type generateResponse struct {
	QuizID    string                 `json:"quiz_id"`
	Questions []model.PublicQuestion `json:"questions"`
}

// GenerateQuestions handles POST /generate-questions. The response never
// carries the answer letters; those stay server-side until check time.
func (h *Handler) GenerateQuestions(c *fiber.Ctx) error {
	rid, _ := c.Locals(middleware.ReqIDKey).(string)
	log := telemetry.L().With().Str("req_id", rid).Logger()

	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, questions, err := h.svc.Generate(c.UserContext(), GenerateParams{
		Content:    req.Content,
		Count:      req.Count,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		log.Error().Err(err).Msg("quiz_generation_failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate quiz."})
	}

	return c.JSON(generateResponse{QuizID: id, Questions: questions})
}

type checkRequest struct {
	QuizID  string            `json:"quiz_id"`
	Answers map[string]string `json:"answers"`
}

// CheckAnswers handles POST /check-answers. An unknown quiz identifier is the
// caller's mistake (400); an empty answers map is not an error, it just
// scores everything incorrect.
func (h *Handler) CheckAnswers(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	results, err := h.svc.Check(c.UserContext(), req.QuizID, req.Answers)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
		}
		lg := telemetry.L()
		lg.Error().Err(err).Str("quiz_id", req.QuizID).Msg("check_answers_failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check answers"})
	}

	return c.JSON(fiber.Map{"result": results})
}
