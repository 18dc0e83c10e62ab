package catalog

import (
	"errors"
	"strings"

	"boardcafe-backend/internal/database"
	"boardcafe-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type CreateGameRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	Photo       *string `json:"photo" validate:"omitempty,url"`
	MinPlayers  int     `json:"min_players" validate:"required,min=1"`
	MaxPlayers  int     `json:"max_players" validate:"required,gtefield=MinPlayers"`
	PlayTime    int     `json:"play_time" validate:"required,min=1"`
	Difficulty  int     `json:"difficulty" validate:"required,min=1,max=5"`
}

type GameResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Photo       *string `json:"photo"`
	MinPlayers  int     `json:"min_players"`
	MaxPlayers  int     `json:"max_players"`
	PlayTime    int     `json:"play_time"`
	Difficulty  int     `json:"difficulty"`
	CreatedAt   string  `json:"created_at"`
}

func toGameResponse(g models.Game) GameResponse {
	return GameResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Photo:       g.Photo,
		MinPlayers:  g.MinPlayers,
		MaxPlayers:  g.MaxPlayers,
		PlayTime:    g.PlayTime,
		Difficulty:  g.Difficulty,
		CreatedAt:   g.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/games
func ListGamesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var games []models.Game
		if err := database.DB.Order("id ASC").Find(&games).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임 목록을 불러올 수 없습니다")
		}

		res := make([]GameResponse, 0, len(games))
		for _, g := range games {
			res = append(res, toGameResponse(g))
		}
		return c.JSON(res)
	}
}

// GET /api/games/:id
func GetGameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var game models.Game
		if err := database.DB.First(&game, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "게임을 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "게임 정보를 불러올 수 없습니다")
		}

		return c.JSON(toGameResponse(game))
	}
}

// POST /api/games
func CreateGameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateGameRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Name = strings.TrimSpace(body.Name)

		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "입력값이 올바르지 않습니다: "+err.Error())
		}

		game := models.Game{
			Name:        body.Name,
			Description: body.Description,
			Photo:       body.Photo,
			MinPlayers:  body.MinPlayers,
			MaxPlayers:  body.MaxPlayers,
			PlayTime:    body.PlayTime,
			Difficulty:  body.Difficulty,
		}

		if err := database.DB.Create(&game).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "게임을 생성할 수 없습니다")
		}

		return c.Status(fiber.StatusCreated).JSON(toGameResponse(game))
	}
}

// GET /api/games/:id/components
func ListGameComponentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var game models.Game
		if err := database.DB.First(&game, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "게임을 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "게임 정보를 불러올 수 없습니다")
		}

		var components []models.Component
		if err := database.DB.Where("game_id = ?", game.ID).Find(&components).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "구성품 목록을 불러올 수 없습니다")
		}

		res := make([]fiber.Map, 0, len(components))
		for _, comp := range components {
			res = append(res, fiber.Map{
				"id":              comp.ID,
				"game_id":         comp.GameID,
				"component_name":  comp.Name,
				"component_count": comp.Count,
				"component_photo": comp.Photo,
			})
		}
		return c.JSON(res)
	}
}
