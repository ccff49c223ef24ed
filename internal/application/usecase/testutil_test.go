package usecase

import (
	"context"

	"github.com/bnema/tilepane/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
}
