package crm

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	coremiddleware "github.com/fluxion-io/fluxion/modules/core/presentation/middleware"
	coreservices "github.com/fluxion-io/fluxion/modules/core/services"
	"github.com/fluxion-io/fluxion/modules/crm/domain"
	"github.com/fluxion-io/fluxion/modules/crm/presentation/dtos"
	"github.com/fluxion-io/fluxion/pkg/application"
	"github.com/fluxion-io/fluxion/pkg/configuration"
	"github.com/fluxion-io/fluxion/pkg/crud"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "crm"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	opts := crud.ServiceOptions{
		DefaultPageSize: conf.PageSize,
		MaxPageSize:     conf.MaxPageSize,
	}
	auth := coremiddleware.Authenticate(
		app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	)

	contactService := crud.NewService(
		domain.ContactSchema,
		crud.NewPgRepository(domain.ContactSchema),
		app.EventPublisher(),
		opts,
	)
	noteService := crud.NewService(
		domain.NoteSchema,
		crud.NewPgRepository(domain.NoteSchema),
		app.EventPublisher(),
		opts,
	).OnBeforeCreate(requireContact(contactService))
	app.RegisterServices(contactService, noteService)

	app.RegisterControllers(
		crud.NewController(crud.ControllerConfig[domain.Contact]{
			BasePath:     "/api/v1/contacts",
			Service:      contactService,
			NewCreateDTO: func() crud.CreateInput[domain.Contact] { return &dtos.ContactCreateDTO{} },
			NewUpdateDTO: func() crud.UpdateInput { return &dtos.ContactUpdateDTO{} },
			Middleware:   []mux.MiddlewareFunc{auth},
		}),
		crud.NewController(crud.ControllerConfig[domain.Note]{
			BasePath:     "/api/v1/notes",
			Service:      noteService,
			NewCreateDTO: func() crud.CreateInput[domain.Note] { return &dtos.NoteCreateDTO{} },
			NewUpdateDTO: func() crud.UpdateInput { return &dtos.NoteUpdateDTO{} },
			QueryFilters: noteFilters,
			Middleware:   []mux.MiddlewareFunc{auth},
		}),
	)
	return nil
}

// requireContact rejects notes referencing a contact the acting tenant
// cannot see, so a cross-tenant reference never persists.
func requireContact(contacts *crud.Service[domain.Contact]) crud.BeforeCreateFunc[domain.Note] {
	return func(ctx context.Context, note *domain.Note) error {
		if _, err := contacts.GetByID(ctx, note.ContactID); err != nil {
			if crud.IsNotFound(err) {
				return crud.NewValidationError(map[string]string{
					"contact_id": "unknown contact",
				})
			}
			return err
		}
		return nil
	}
}

// noteFilters maps ?contact_id=... to an exact-match filter. A malformed id
// matches nothing rather than leaking an error through the list path.
func noteFilters(values url.Values) []crud.Filter {
	raw := values.Get("contact_id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return []crud.Filter{{Column: "contact_id", Value: uuid.Nil}}
	}
	return []crud.Filter{{Column: "contact_id", Value: id}}
}
