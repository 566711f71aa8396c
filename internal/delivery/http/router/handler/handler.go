package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the user ID placed on the context by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}
