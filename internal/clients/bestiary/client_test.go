package bestiary

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// mockSource is a mock implementation of Source for testing
type mockSource struct {
	mock.Mock
}

func (m *mockSource) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	refs, _ := args.Get(0).([]*entities.ReferenceItem)
	return refs, args.Error(1)
}

func monsterIndex() []*entities.ReferenceItem {
	return []*entities.ReferenceItem{
		{Key: "goblin", Name: "Goblin"},
		{Key: "hobgoblin", Name: "Hobgoblin"},
		{Key: "adult-red-dragon", Name: "Adult Red Dragon"},
		{Key: "young-red-dragon", Name: "Young Red Dragon"},
		nil,
		{Key: "", Name: "Nameless"},
	}
}

func newTestClient(t *testing.T, source Source) Client {
	t.Helper()
	c, err := New(&Config{Source: source})
	require.NoError(t, err)
	return c
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "adult-red-dragon", Slug("  Adult Red Dragon "))
	assert.Equal(t, "will-o-wisp", Slug("Will-o'-Wisp"))
	assert.Equal(t, "", Slug("!!!"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://www.dnd5eapi.co/api/", cfg.BaseURL)
	assert.NotZero(t, cfg.HTTPTimeout)
	assert.NotZero(t, cfg.CacheTTL)

	bad := &Config{CacheTTL: -1}
	assert.True(t, errors.IsInvalidArgument(bad.Validate()))
}

func TestListMonsters(t *testing.T) {
	t.Run("skips unusable entries", func(t *testing.T) {
		source := new(mockSource)
		source.On("ListMonsters").Return(monsterIndex(), nil)

		monsters, err := newTestClient(t, source).ListMonsters(context.Background())
		require.NoError(t, err)
		assert.Len(t, monsters, 4)
		assert.Equal(t, Monster{Key: "goblin", Name: "Goblin"}, monsters[0])
		source.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		source := new(mockSource)
		source.On("ListMonsters").Return(nil, stderrors.New("connection refused"))

		_, err := newTestClient(t, source).ListMonsters(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsUnavailable(err))
	})

	t.Run("canceled before calling out", func(t *testing.T) {
		source := new(mockSource)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestClient(t, source).ListMonsters(ctx)
		assert.True(t, errors.IsCanceled(err))
		source.AssertNotCalled(t, "ListMonsters")
	})
}

func TestSearchMonsters(t *testing.T) {
	source := new(mockSource)
	source.On("ListMonsters").Return(monsterIndex(), nil)
	c := newTestClient(t, source)

	matches, err := c.SearchMonsters(context.Background(), "goblin")
	require.NoError(t, err)
	assert.Equal(t, []Monster{{Key: "goblin", Name: "Goblin"}, {Key: "hobgoblin", Name: "Hobgoblin"}}, matches)

	matches, err = c.SearchMonsters(context.Background(), "red dragon")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = c.SearchMonsters(context.Background(), "beholder")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveMonster(t *testing.T) {
	source := new(mockSource)
	source.On("ListMonsters").Return(monsterIndex(), nil)
	c := newTestClient(t, source)
	ctx := context.Background()

	testCases := []struct {
		name     string
		query    string
		wantKey  string
		wantCode errors.Code
	}{
		{name: "exact key beats substring matches", query: "goblin", wantKey: "goblin"},
		{name: "exact name", query: "adult red dragon", wantKey: "adult-red-dragon"},
		{name: "unique substring", query: "hob", wantKey: "hobgoblin"},
		{name: "ambiguous", query: "red dragon", wantCode: errors.CodeInvalidArgument},
		{name: "no match", query: "beholder", wantCode: errors.CodeNotFound},
		{name: "blank", query: "  ", wantCode: errors.CodeInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := c.ResolveMonster(ctx, tc.query)
			if tc.wantKey != "" {
				require.NoError(t, err)
				assert.Equal(t, tc.wantKey, m.Key)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, errors.GetCode(err))
		})
	}
}
