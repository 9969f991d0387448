package dtos_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxion-io/fluxion/modules/crm/presentation/dtos"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

func TestContactUpdateDTO_AbsentFieldsProduceNoChanges(t *testing.T) {
	var dto dtos.ContactUpdateDTO
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Ada"}`), &dto))

	changes := dto.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, crud.Change{Column: "first_name", Value: "Ada"}, changes[0])
}

func TestContactUpdateDTO_ExplicitEmptyStringIsAChange(t *testing.T) {
	var dto dtos.ContactUpdateDTO
	require.NoError(t, json.Unmarshal([]byte(`{"phone":""}`), &dto))

	changes := dto.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, crud.Change{Column: "phone", Value: ""}, changes[0])
}

func TestContactUpdateDTO_EmptyPayload(t *testing.T) {
	var dto dtos.ContactUpdateDTO
	require.NoError(t, json.Unmarshal([]byte(`{}`), &dto))
	assert.Empty(t, dto.Changes())
}

func TestContactCreateDTO_TenantClaim(t *testing.T) {
	var dto dtos.ContactCreateDTO
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"Ada","last_name":"Lovelace"}`), &dto))
	_, claimed := dto.TenantClaim()
	assert.False(t, claimed)

	id := uuid.New()
	require.NoError(t, json.Unmarshal([]byte(`{"tenant_id":"`+id.String()+`","first_name":"Ada"}`), &dto))
	got, claimed := dto.TenantClaim()
	assert.True(t, claimed)
	assert.Equal(t, id, got)
}
