package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/squeeze/internal/app"
	"go.trai.ch/squeeze/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"minify-js": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

// TestRun_UnknownFlag verifies that usage errors are logged and exit with 1.
func TestRun_UnknownFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"--minify-harder"}, new(bytes.Buffer), new(bytes.Buffer),
		func(context.Context) (*app.Components, func(), error) {
			return &app.Components{Logger: log}, func() {}, nil
		})

	assert.Equal(t, 1, exitCode)
}
