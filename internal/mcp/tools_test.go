package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/career-assistant/internal/responder"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("greeting", func(t *testing.T) {
		result, output, err := server.handleAsk(ctx, nil, AskInput{Message: "Hi"})

		require.NoError(t, err)
		assert.Equal(t, responder.GreetingReply, output.Reply)
		assert.Equal(t, responder.RuleGreeting, output.Rule)
		assert.Empty(t, output.Section)
		require.Len(t, result.Content, 1)
	})

	t.Run("retrieval reports section and score", func(t *testing.T) {
		_, output, err := server.handleAsk(ctx, nil, AskInput{Message: "xgboost"})

		require.NoError(t, err)
		assert.Equal(t, responder.RuleRetrieval, output.Rule)
		assert.Equal(t, "Projects", output.Section)
		assert.Greater(t, output.Score, 0.0)
		assert.Equal(t, "**Answer based on Projects:**\n\nSales prediction with XGBoost.", output.Reply)
	})

	t.Run("history is ignored", func(t *testing.T) {
		history := []responder.Message{{Role: "user", Content: "show me your bio"}}
		_, output, err := server.handleAsk(ctx, nil, AskInput{Message: "zzqxj", History: history})

		require.NoError(t, err)
		assert.Equal(t, responder.RefusalReply, output.Reply)
	})
}
