package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inss_refin/internal/adapter/persistence/repository"
	"inss_refin/internal/infrastructure/database"
	"inss_refin/internal/infrastructure/multicorban"
	"inss_refin/internal/infrastructure/partners"
	"inss_refin/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	testCPF    = "52998224725"
	personJSON = `{"cpf":"52998224725","name":"Maria da Silva","birth_date":"1955-03-15","mother_name":"Ana da Silva","phone":"51999990000",
		"address":{"street":"Rua A","number":"10","district":"Centro","city":"Porto Alegre","state":"RS","zip_code":"90010000"}}`
	accountJSON = `{"bank_code":"041","agency":"1234","account":"567890","account_digit":"1","account_type":"checking"}`
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := database.OpenSQLite(":memory:", &repository.DigitizationModel{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return NewRouter(Dependencies{
		Partners: usecase.NewPartnerDirectory(
			partners.NewSandboxBank(partners.C6Name, 2),
			partners.NewSandboxBank(partners.SafraName, 2),
		),
		Store:      repository.NewDigitizationGormRepository(db),
		Benefits:   multicorban.SandboxClient{},
		PollPolicy: usecase.PollPolicy{MaxAttempts: 5, Interval: 5 * time.Millisecond, CallTimeout: time.Second},
	})
}

func call(t *testing.T, r http.Handler, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-ID", "op-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: invalid body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

func TestNewRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	if code := call(t, r, http.MethodGet, "/v1/ping", "", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := call(t, r, http.MethodPost, "/api/itau/simulate", "{}", nil); code != http.StatusNotFound {
		t.Fatalf("unregistered bank must 404, got %d", code)
	}
}

func TestNewRouter_ProposalLifecycle(t *testing.T) {
	r := newTestRouter(t)

	var sim struct {
		Conditions []struct {
			Index          int     `json:"index"`
			ProductCode    string  `json:"product_code"`
			FinancedAmount float64 `json:"financed_amount"`
		} `json:"conditions"`
	}
	code := call(t, r, http.MethodPost, "/api/c6/simulate",
		`{"cpf":"`+testCPF+`","enrollment_id":"1234567890","contract_ids":["SBX-001"],"mode":"term","installment_quantity":84}`, &sim)
	if code != http.StatusOK || len(sim.Conditions) != 1 {
		t.Fatalf("simulate: %d %+v", code, sim)
	}

	var rec struct {
		ProposalNumber string  `json:"proposal_number"`
		Status         string  `json:"status"`
		Link           *string `json:"formalization_link"`
	}
	code = call(t, r, http.MethodPost, "/api/c6/include-proposal",
		`{"enrollment_id":"1234567890","contract_ids":["SBX-001"],"beneficiary":`+personJSON+`,"bank_account":`+accountJSON+`,
		  "condition":{"product_code":"`+sim.Conditions[0].ProductCode+`","financed_amount":2100,"fees":[{"code":"PREST","exempt":false}]}}`, &rec)
	if code != http.StatusCreated || rec.ProposalNumber == "" || rec.Status != "pending" || rec.Link != nil {
		t.Fatalf("include: %d %+v", code, rec)
	}

	if code := call(t, r, http.MethodPost, "/api/c6/formalization-link-attempts/"+rec.ProposalNumber, "", nil); code != http.StatusAccepted {
		t.Fatalf("start polling: %d", code)
	}

	var report struct {
		Outcome  string `json:"outcome"`
		Attempts int    `json:"attempts"`
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		call(t, r, http.MethodGet, "/api/c6/formalization-link-attempts/"+rec.ProposalNumber, "", &report)
		if report.Outcome != "running" || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if report.Outcome != "found" || report.Attempts != 2 {
		t.Fatalf("unexpected poll report: %+v", report)
	}

	code = call(t, r, http.MethodGet, "/api/c6-digitizations/"+rec.ProposalNumber, "", &rec)
	if code != http.StatusOK || rec.Status != "approved" || rec.Link == nil {
		t.Fatalf("record after polling: %d %+v", code, rec)
	}

	var list struct {
		Total int `json:"total"`
	}
	call(t, r, http.MethodGet, "/api/c6-digitizations?status=approved&client_name=maria", "", &list)
	if list.Total != 1 {
		t.Fatalf("expected one approved c6 record, got %d", list.Total)
	}
	call(t, r, http.MethodGet, "/api/safra-digitizations", "", &list)
	if list.Total != 0 {
		t.Fatalf("records must not leak across banks, got %d", list.Total)
	}
	if code := call(t, r, http.MethodGet, "/api/safra-digitizations/"+rec.ProposalNumber, "", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 from the other bank, got %d", code)
	}
}

func TestNewRouter_Workflow(t *testing.T) {
	r := newTestRouter(t)

	var run struct {
		ID                string   `json:"id"`
		State             string   `json:"state"`
		SelectedContracts []string `json:"selected_contracts"`
		ProposalNumber    string   `json:"proposal_number"`
	}
	if code := call(t, r, http.MethodPost, "/v1/workflows", `{"bank":"safra","cpf":"`+testCPF+`"}`, &run); code != http.StatusCreated {
		t.Fatalf("start: %d", code)
	}
	base := "/v1/workflows/" + run.ID

	if code := call(t, r, http.MethodPut, base+"/contracts", `{"contract_ids":["SBX-001","SBX-004"]}`, nil); code != http.StatusConflict {
		t.Fatalf("mixed enrollments must conflict, got %d", code)
	}
	if code := call(t, r, http.MethodPut, base+"/contracts", `{"contract_ids":["SBX-001","SBX-002"]}`, &run); code != http.StatusOK {
		t.Fatalf("select contracts: %d", code)
	}
	if code := call(t, r, http.MethodPost, base+"/simulate", `{"mode":"term","installment_quantity":84}`, &run); code != http.StatusOK || run.State != "condition-selection" {
		t.Fatalf("simulate: %d %s", code, run.State)
	}
	if code := call(t, r, http.MethodPut, base+"/condition", `{"index":0,"insurance_code":"PREST"}`, &run); code != http.StatusOK || run.State != "digitizing" {
		t.Fatalf("condition: %d %s", code, run.State)
	}
	if code := call(t, r, http.MethodPost, base+"/digitize", `{"beneficiary":`+personJSON+`,"bank_account":`+accountJSON+`}`, &run); code != http.StatusOK || run.State != "formalization-polling" {
		t.Fatalf("digitize: %d %s", code, run.State)
	}

	deadline := time.Now().Add(2 * time.Second)
	for run.State == "formalization-polling" && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
		call(t, r, http.MethodGet, base, "", &run)
	}
	if run.State != "found" {
		t.Fatalf("expected found, got %s", run.State)
	}

	var rec struct {
		Status            string   `json:"status"`
		SelectedContracts []string `json:"selected_contracts"`
	}
	call(t, r, http.MethodGet, "/api/safra-digitizations/"+run.ProposalNumber, "", &rec)
	if rec.Status != "approved" || len(rec.SelectedContracts) != 2 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if code := call(t, r, http.MethodDelete, base, "", nil); code != http.StatusOK {
		t.Fatalf("cancel: %d", code)
	}
	if code := call(t, r, http.MethodGet, base, "", nil); code != http.StatusNotFound {
		t.Fatalf("cancelled run must be gone, got %d", code)
	}
}
