package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dataloader/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("site.yml")
	b := domain.NewInternedString("site.yml")

	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, "site.yml", a.String())

	var zero domain.InternedString
	assert.Empty(t, zero.String())
}

func TestInternedString_Text(t *testing.T) {
	type wrapper struct {
		Source domain.InternedString `json:"source"`
	}

	data, err := json.Marshal(wrapper{Source: domain.NewInternedString("vars/main.yml")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"vars/main.yml"}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "vars/main.yml", out.Source.String())
}

func TestPosition_SharesInternedSource(t *testing.T) {
	a := domain.NewPosition("roles/web/tasks/main.yml", 3, 1)
	b := domain.NewPosition("roles/web/tasks/main.yml", 9, 5)

	assert.Equal(t, a.Source.Value(), b.Source.Value())
}
