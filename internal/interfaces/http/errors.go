package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/microempresas-api/internal/application/dto"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

// respondError traduce los errores de dominio a HTTP. Lo no reconocido es 500 con el mensaje crudo.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detail(err, domain.ErrInvalidInput)})
	case errors.Is(err, domain.ErrNoFields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FIELDS", Message: domain.ErrNoFields.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: domain.ErrEmailAlreadyExists.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado o sin permisos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNoTenant):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_TENANT", Message: domain.ErrNoTenant.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: detail(err, domain.ErrForbidden)})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// detail quita el prefijo del sentinel: "entrada inválida: x es obligatorio" → "x es obligatorio".
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee un id positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// queryID lee un id opcional del query string; ausente es nil.
func queryID(c *fiber.Ctx, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s inválido", domain.ErrInvalidInput, name)
	}
	return &id, nil
}

// pageQuery page y limit del query string; los valores fuera de rango se normalizan en el caso de uso.
func pageQuery(c *fiber.Ctx) dto.PageQuery {
	return dto.PageQuery{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 0),
	}
}

// withTotal publica el total del filtro en X-Total-Count; el cuerpo es solo el arreglo.
func withTotal(c *fiber.Ctx, items any, total int) error {
	c.Set("X-Total-Count", strconv.Itoa(total))
	return c.JSON(items)
}

func mustCaller(c *fiber.Ctx) (entity.Caller, error) {
	caller, ok := GetCaller(c)
	if !ok {
		return entity.Caller{}, domain.ErrUnauthorized
	}
	return caller, nil
}
