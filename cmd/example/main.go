package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-localauth/localauth/pkg/localauth"
	"github.com/go-localauth/localauth/pkg/options"
	"github.com/go-localauth/localauth/pkg/sugar"
	"github.com/samber/lo"
)

type config struct {
	Reason        string `env:"LOCALAUTH_REASON" envDefault:"Unlock the example vault"`
	AllowPasscode bool   `env:"LOCALAUTH_ALLOW_PASSCODE" envDefault:"true"`
	Debug         bool   `env:"LOCALAUTH_DEBUG"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	lvl := new(slog.LevelVar)
	if cfg.Debug {
		lvl.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))

	auth := localauth.New(options.WithLogger(logger))
	auth.DefaultReason = cfg.Reason

	fmt.Printf("Biometric supported: %t\n", auth.SupportsBiometric())
	fmt.Printf("Biometry type: %s\n", auth.BiometryType())

	typ := lo.Ternary(cfg.AllowPasscode, localauth.TypeBiometryOrPasscode, localauth.TypeBiometry)
	res, err := sugar.AuthenticateSync(context.Background(), auth, typ, "", nil, nil)
	if err != nil {
		panic(err)
	}

	switch {
	case res.IsSuccess():
		fmt.Println("Authenticated.")
	case res.Err.IsCancel():
		fmt.Printf("Cancelled: %s\n", res.Err)
	default:
		fmt.Printf("Failed: %s\n", res.Err)
	}
}
