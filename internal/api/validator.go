package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/lwc/internal/domain/dto"
	"github.com/ougirez/lwc/internal/pkg/constants"
)

type validator struct{}

func NewValidator() echo.Validator {
	return &validator{}
}

func (v *validator) Validate(i interface{}) error {
	return dto.Validate(i)
}

type binder struct {
	echo.DefaultBinder
}

func NewBinder() echo.Binder {
	return &binder{}
}

func (b *binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	return nil
}

// sonicSerializer is echo's JSON serializer backed by sonic's std-compatible config.
type sonicSerializer struct{}

func (s *sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigStd.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := sonic.ConfigStd.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
