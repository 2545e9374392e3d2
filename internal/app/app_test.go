package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFareAssistApp_Initializers(t *testing.T) {
	app := NewFareAssistApp()
	require.NotNil(t, app, "NewFareAssistApp should not return nil")
}
