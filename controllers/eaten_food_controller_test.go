package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestLookupStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, lookupStatus(gorm.ErrRecordNotFound))
	// Services wrap store errors; the mapping must see through the wrapping.
	assert.Equal(t, http.StatusNotFound, lookupStatus(fmt.Errorf("load food: %w", gorm.ErrRecordNotFound)))
	assert.Equal(t, http.StatusInternalServerError, lookupStatus(errors.New("db down")))
}
