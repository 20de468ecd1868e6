//go:build !nogpu

package ggapp

import (
	"github.com/gogpu/ggapp/app"
	"github.com/gogpu/ggapp/backend/windowed"
)

func init() {
	constructors[BackendWindowed] = func(p app.Program, cfg app.Configuration) (app.Application, error) {
		a, err := windowed.New(p, cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}
