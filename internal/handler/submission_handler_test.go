package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jevelon/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)
}

func (m *mockContactService) Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.ContactMessage{ID: "c-1"}, nil
}

type mockSupportTicketService struct {
	submitFunc func(ctx context.Context, in model.SupportTicketInput) (*model.SupportTicket, error)
	listFunc   func(ctx context.Context) ([]*model.SupportTicket, error)
}

func (m *mockSupportTicketService) Submit(ctx context.Context, in model.SupportTicketInput) (*model.SupportTicket, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.SupportTicket{ID: "t-1"}, nil
}

func (m *mockSupportTicketService) List(ctx context.Context) ([]*model.SupportTicket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockConsultationService struct {
	scheduleFunc func(ctx context.Context, in model.ConsultationInput) (*model.ConsultationRequest, error)
}

func (m *mockConsultationService) Schedule(ctx context.Context, in model.ConsultationInput) (*model.ConsultationRequest, error) {
	if m.scheduleFunc != nil {
		return m.scheduleFunc(ctx, in)
	}
	return &model.ConsultationRequest{ID: "k-1"}, nil
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ---------------------------------------------------------------------------
// POST /api/contact/submit/
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured model.ContactInput
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			captured = in
			return &model.ContactMessage{ID: "c-1", EmailSent: false}, nil
		},
	}, false)

	body := `{"name":"Ana","email":"ana@example.com","service":"web","message":"Hi"}`
	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact/submit/", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Ana" || captured.Service != "web" {
		t.Errorf("unexpected input passed to service: %+v", captured)
	}
	var resp submitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message != "Contact form submitted successfully" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestContactHandler_Submit_ValidationError(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			fe := model.FieldErrors{}
			fe.Add("email", "Enter a valid email address.")
			return nil, &model.ValidationError{Fields: fe}
		},
	}, false)

	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact/submit/", `{"email":"x"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if got := resp.Errors["email"]; len(got) != 1 || got[0] != "Enter a valid email address." {
		t.Errorf("unexpected errors: %v", resp.Errors)
	}
}

func TestContactHandler_Submit_StoreFailure(t *testing.T) {
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			return nil, errors.New("store contact message: connection refused")
		},
	}, false)

	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact/submit/", `{}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp faultResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("unexpected body: %+v", resp)
	}
	if strings.Contains(resp.Error, "connection refused") {
		t.Error("store error leaked outside debug mode")
	}
}

func TestContactHandler_Submit_MalformedJSON(t *testing.T) {
	called := false
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			called = true
			return nil, nil
		},
	}, false)

	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/contact/submit/", `{"name":`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service should not be called for a malformed body")
	}
	var resp errorsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors[model.NonFieldErrors]) == 0 {
		t.Errorf("expected non_field_errors, got %v", resp.Errors)
	}
}

func TestContactHandler_Submit_FormEncoded(t *testing.T) {
	var captured model.ContactInput
	h := NewContactHandler(&mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
			captured = in
			return &model.ContactMessage{ID: "c-2"}, nil
		},
	}, false)

	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "service": {"web"}, "message": {"Hi"}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact/submit/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Email != "ana@example.com" || captured.Message != "Hi" {
		t.Errorf("unexpected input: %+v", captured)
	}
}

// ---------------------------------------------------------------------------
// /api/support/
// ---------------------------------------------------------------------------

func TestSupportHandler_Submit_ReturnsTicketID(t *testing.T) {
	h := NewSupportHandler(&mockSupportTicketService{
		submitFunc: func(ctx context.Context, in model.SupportTicketInput) (*model.SupportTicket, error) {
			return &model.SupportTicket{ID: "t-42", Priority: model.PriorityMedium}, nil
		},
	}, false)

	body := `{"name":"Bo","email":"bo@example.com","subject":"Login broken","message":"Cannot log in"}`
	rec := httptest.NewRecorder()
	h.Submit(rec, jsonRequest(http.MethodPost, "/api/support/submit/", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp ticketSubmitResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.TicketID != "t-42" || resp.Message != "Support ticket submitted successfully" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestSupportHandler_List_EmptyArray(t *testing.T) {
	h := NewSupportHandler(&mockSupportTicketService{}, false)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/support/tickets/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":true,"tickets":[]}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestSupportHandler_List_Tickets(t *testing.T) {
	h := NewSupportHandler(&mockSupportTicketService{
		listFunc: func(ctx context.Context) ([]*model.SupportTicket, error) {
			return []*model.SupportTicket{{ID: "b"}, {ID: "a"}}, nil
		},
	}, false)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/support/tickets/", nil))

	var resp struct {
		Success bool `json:"success"`
		Tickets []struct {
			ID string `json:"id"`
		} `json:"tickets"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Tickets) != 2 || resp.Tickets[0].ID != "b" {
		t.Errorf("unexpected tickets: %+v", resp.Tickets)
	}
}

func TestSupportHandler_List_Error(t *testing.T) {
	h := NewSupportHandler(&mockSupportTicketService{
		listFunc: func(ctx context.Context) ([]*model.SupportTicket, error) {
			return nil, errors.New("timeout")
		},
	}, true)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/support/tickets/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "timeout") {
		t.Errorf("expected error text in debug mode, got %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// POST /api/consultation/schedule/
// ---------------------------------------------------------------------------

func TestConsultationHandler_Schedule_Success(t *testing.T) {
	var captured model.ConsultationInput
	h := NewConsultationHandler(&mockConsultationService{
		scheduleFunc: func(ctx context.Context, in model.ConsultationInput) (*model.ConsultationRequest, error) {
			captured = in
			return &model.ConsultationRequest{ID: "k-7"}, nil
		},
	}, false)

	body := `{"name":"Cy","email":"cy@example.com","project_type":"mobile","preferred_date":"2030-01-15","preferred_time":"10:00"}`
	rec := httptest.NewRecorder()
	h.Schedule(rec, jsonRequest(http.MethodPost, "/api/consultation/schedule/", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.PreferredDate != "2030-01-15" {
		t.Errorf("unexpected input: %+v", captured)
	}
	var resp consultationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ConsultationID != "k-7" || resp.Message != "Consultation scheduled successfully" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestConsultationHandler_Schedule_WrongType(t *testing.T) {
	h := NewConsultationHandler(&mockConsultationService{}, false)

	rec := httptest.NewRecorder()
	h.Schedule(rec, jsonRequest(http.MethodPost, "/api/consultation/schedule/", `{"preferred_date":20300115}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Errors["preferred_date"]; !ok {
		t.Errorf("expected preferred_date error, got %v", resp.Errors)
	}
}
