package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inventario/internal/model"
)

// parseID coerces the :id path parameter to an unsigned integer. Callers map
// a failed coercion to whatever their operation's failure mode is (absence
// for single-record GETs, the generic 500 for everything else).
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

// parseFecha converts an optional "YYYY-MM-DD" body field. Empty or omitted
// values coalesce to NULL.
func parseFecha(s *string) (*model.Fecha, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	f, err := model.ParseFecha(*s)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// parseHora converts an optional "HH:MM:SS" body field, composing the
// time-of-day onto the fixed epoch date. Empty or omitted values coalesce to
// NULL.
func parseHora(s *string) (*model.Hora, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	h, err := model.ParseHora(*s)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
