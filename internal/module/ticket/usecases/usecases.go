package usecases

import (
	"context"
	"time"

	"zoo-ticketing/internal/module/ticket/identity"
	"zoo-ticketing/internal/module/ticket/models/entity"
	"zoo-ticketing/internal/module/ticket/models/request"
	"zoo-ticketing/internal/module/ticket/pricing"
	"zoo-ticketing/internal/module/ticket/qr"
	"zoo-ticketing/internal/module/ticket/render"
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

type State string

func (s State) String() string {
	return string(s)
}

const (
	StateCollecting State = "collecting"
	StateSubmitted  State = "submitted"
	StateRendered   State = "rendered"
	StateDownloaded State = "downloaded"
	StateDismissed  State = "dismissed"
)

const (
	minAge = 0
	maxAge = 120
)

type Usecase interface {
	// Submit validates the form, builds the immutable ticket record and
	// renders the artifact once the QR encoder signals completion. A prior
	// artifact is replaced, never stacked.
	Submit(ctx context.Context, form *request.TicketForm) (*entity.TicketRecord, error)
	// Download hands out the rendered artifact.
	Download() (render.Artifact, error)
	// Dismiss discards the record and artifact; nothing is persisted.
	Dismiss()
	State() State
	Record() (*entity.TicketRecord, bool)
}

type usecase struct {
	schedule  pricing.Schedule
	renderer  *render.Renderer
	encoder   qr.Encoder
	validator *validator.Validate
	log       log.Logger
	now       func() time.Time

	state    State
	record   *entity.TicketRecord
	artifact *render.Artifact
}

func New(schedule pricing.Schedule, renderer *render.Renderer, encoder qr.Encoder, validator *validator.Validate, logger log.Logger) Usecase {
	return &usecase{
		schedule:  schedule,
		renderer:  renderer,
		encoder:   encoder,
		validator: validator,
		log:       logger,
		now:       time.Now,
		state:     StateCollecting,
	}
}

func (u *usecase) State() State {
	return u.state
}

func (u *usecase) Record() (*entity.TicketRecord, bool) {
	return u.record, u.record != nil
}

func (u *usecase) Submit(ctx context.Context, form *request.TicketForm) (*entity.TicketRecord, error) {
	u.state = StateCollecting

	if err := u.validator.Struct(form); err != nil {
		u.log.Error(ctx, "error validate ticket form", "error", err)
		return nil, &errors.UserInputError{Reason: "please fill in all required fields"}
	}

	category := entity.Category(form.Category)
	price, err := u.schedule.PriceOf(category)
	if err != nil {
		u.log.Error(ctx, "error resolve ticket category", "category", form.Category)
		return nil, &errors.UserInputError{Reason: "please select a ticket category"}
	}

	// out-of-range ages are clamped, not rejected
	age := form.Age
	if age < minAge {
		age = minAge
	} else if age > maxAge {
		age = maxAge
	}

	today := startOfDay(u.now())
	if form.VisitDate.Before(today) {
		// reject and clear the field, the form stays in collecting
		form.VisitDate = time.Time{}
		return nil, &errors.UserInputError{Reason: "please select a future date"}
	}

	purchasedAt := u.now()
	record := entity.TicketRecord{
		ID:          identity.NewTicketID(),
		Name:        form.Name,
		Age:         age,
		Gender:      form.Gender,
		Category:    category,
		Price:       price,
		VisitDate:   form.VisitDate,
		PurchasedAt: purchasedAt,
		ValidUntil:  identity.ValidUntil(purchasedAt),
	}
	u.state = StateSubmitted

	payload, err := json.Marshal(record)
	if err != nil {
		u.state = StateCollecting
		return nil, &errors.EncodingError{Err: err}
	}

	// rendering waits for the encoder's completion signal, or for the
	// caller abandoning the submit
	select {
	case <-ctx.Done():
		u.state = StateCollecting
		return nil, ctx.Err()
	case result := <-u.encoder.Encode(ctx, payload, u.renderer.QRSize()):
		if result.Err != nil {
			u.log.Error(ctx, "error encode ticket qr", "error", result.Err)
			u.state = StateCollecting
			return nil, &errors.EncodingError{Err: result.Err}
		}

		artifact, err := u.renderer.Render(record, result.PNG)
		if err != nil {
			u.log.Error(ctx, "error render ticket artifact", "error", err)
			u.state = StateCollecting
			return nil, &errors.EncodingError{Err: err}
		}

		u.record = &record
		u.artifact = &artifact
		u.state = StateRendered
		return u.record, nil
	}
}

func (u *usecase) Download() (render.Artifact, error) {
	if u.artifact == nil || (u.state != StateRendered && u.state != StateDownloaded) {
		return render.Artifact{}, &errors.UserInputError{Reason: "no rendered ticket to download"}
	}
	u.state = StateDownloaded
	return *u.artifact, nil
}

func (u *usecase) Dismiss() {
	u.record = nil
	u.artifact = nil
	u.state = StateDismissed
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
