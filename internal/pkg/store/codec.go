package store

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
)

var codec = sonic.ConfigStd

// GetJSON reads key and decodes it into dest.
func GetJSON(ctx context.Context, s Store, key string, dest any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := Decode(raw, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}

	return nil
}

// Decode unmarshals raw into dest. Fields missing from raw keep their current value in dest.
func Decode(raw []byte, dest any) error {
	return codec.Unmarshal(raw, dest)
}

// PutJSON encodes v and writes it under key.
func PutJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	return s.Set(ctx, key, raw)
}
