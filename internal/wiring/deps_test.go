package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/squeeze/internal/app"
	_ "go.trai.ch/squeeze/internal/wiring"
)

// TestGraftDependencies ensures that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}

func TestExecuteForComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
