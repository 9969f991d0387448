package crm

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxion-io/fluxion/modules/crm/domain"
	"github.com/fluxion-io/fluxion/modules/crm/presentation/dtos"
	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

func TestNoteFilters(t *testing.T) {
	id := uuid.New()

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, noteFilters(url.Values{}))
	})

	t.Run("exact match", func(t *testing.T) {
		filters := noteFilters(url.Values{"contact_id": {id.String()}})
		require.Len(t, filters, 1)
		assert.Equal(t, crud.Filter{Column: "contact_id", Value: id}, filters[0])
	})

	t.Run("malformed id matches nothing", func(t *testing.T) {
		filters := noteFilters(url.Values{"contact_id": {"garbage"}})
		require.Len(t, filters, 1)
		assert.Equal(t, uuid.Nil, filters[0].Value)
	})
}

func TestNoteCreateRequiresVisibleContact(t *testing.T) {
	contactSvc := crud.NewService(domain.ContactSchema, crud.NewMemoryRepository(domain.ContactSchema), nil, crud.ServiceOptions{})
	noteSvc := crud.NewService(domain.NoteSchema, crud.NewMemoryRepository(domain.NoteSchema), nil, crud.ServiceOptions{}).
		OnBeforeCreate(requireContact(contactSvc))

	ownerCtx := composables.WithTenantID(context.Background(), uuid.New())
	otherCtx := composables.WithTenantID(context.Background(), uuid.New())

	contact, err := contactSvc.Create(ownerCtx, &dtos.ContactCreateDTO{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	_, err = noteSvc.Create(ownerCtx, &dtos.NoteCreateDTO{ContactID: contact.ID, Body: "first call"})
	require.NoError(t, err)

	t.Run("another tenant cannot attach a note to that contact", func(t *testing.T) {
		_, err := noteSvc.Create(otherCtx, &dtos.NoteCreateDTO{ContactID: contact.ID, Body: "intro"})
		require.Error(t, err)
		assert.True(t, crud.IsValidationError(err))

		page, err := noteSvc.List(otherCtx, crud.ListParams{})
		require.NoError(t, err)
		assert.Zero(t, page.Total)
	})

	t.Run("unknown contact is rejected", func(t *testing.T) {
		_, err := noteSvc.Create(ownerCtx, &dtos.NoteCreateDTO{ContactID: uuid.New(), Body: "dangling"})
		require.Error(t, err)
		assert.True(t, crud.IsValidationError(err))
	})
}

func TestNotesFilteredByContact(t *testing.T) {
	tenantID := uuid.New()
	ctx := composables.WithTenantID(context.Background(), tenantID)

	svc := crud.NewService(domain.NoteSchema, crud.NewMemoryRepository(domain.NoteSchema), nil, crud.ServiceOptions{})

	contactA := uuid.New()
	contactB := uuid.New()
	for _, c := range []struct {
		contact uuid.UUID
		body    string
	}{
		{contactA, "first call"},
		{contactA, "follow up"},
		{contactB, "intro"},
	} {
		_, err := svc.Create(ctx, &dtos.NoteCreateDTO{ContactID: c.contact, Body: c.body})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, crud.ListParams{
		Filters: noteFilters(url.Values{"contact_id": {contactA.String()}}),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	for _, note := range page.Items {
		assert.Equal(t, contactA, note.ContactID)
	}
}
