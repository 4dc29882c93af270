package processor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/joseph-ayodele/ftw-report/constants"
	"github.com/joseph-ayodele/ftw-report/internal/common"
	"github.com/joseph-ayodele/ftw-report/internal/extract"
	"github.com/joseph-ayodele/ftw-report/internal/llm"
	"github.com/joseph-ayodele/ftw-report/internal/report"
	"github.com/joseph-ayodele/ftw-report/internal/repository"
)

type fakeOracle struct {
	out   string
	err   error
	calls int
	last  llm.ExtractRequest
}

func (f *fakeOracle) ExtractFields(_ context.Context, req llm.ExtractRequest) ([]byte, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.out), nil
}

type fakeText struct {
	res extract.TextExtractionResult
	err error
}

func (f fakeText) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return f.res, f.err
}

type memSessions struct {
	saved   []repository.Session
	saveErr error
}

func (m *memSessions) Save(_ context.Context, s repository.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, s)
	return nil
}

func (m *memSessions) Current(context.Context) (repository.Session, error) {
	if len(m.saved) == 0 {
		return repository.Session{}, common.ErrNotFound
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memSessions) Reset(context.Context) error {
	m.saved = nil
	return nil
}

const sourceJSON = `{
	"expedienteAlta": "E.E. - 34142629 - 2025 - ESC200866",
	"fechaCese": "30/06/2025",
	"motivoCese": "Presentacion del titular",
	"cuil": "27-30111222-4",
	"apellidoYNombre": "GOMEZ ANA",
	"caracterDesignacion": "INTERINO",
	"cargoACubrir": "MAESTRO DE GRADO",
	"horasCatedra": "0",
	"turno": "Turno Mañana"
}`

func newProcessor(fo llm.FieldExtractor, tx extract.TextExtractor, strategy llm.Strategy, sessions repository.SessionRepository) *Processor {
	asm := report.NewAssembler(report.Organization{Establishment: "ESC", Phone: "1", Delegation: "III", Division: "3511"}, nil)
	return NewProcessor(nil,
		NewTextStage(tx, nil),
		NewParseStage(nil, strategy, 0, fo, asm),
		sessions,
	)
}

func TestAnalyze_RulesStrategy(t *testing.T) {
	fo := &fakeOracle{out: sourceJSON}
	sessions := &memSessions{}
	p := newProcessor(fo, nil, llm.StrategyRules, sessions)

	rec, err := p.Analyze(context.Background(), "texto OCR")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if fo.calls != 1 || fo.last.SchemaName != llm.SourceSchemaName {
		t.Fatalf("oracle calls=%d schema=%q", fo.calls, fo.last.SchemaName)
	}
	if rec.Mode != constants.ModeCessation {
		t.Fatalf("Mode = %q", rec.Mode)
	}
	if rec.Role != "aun no posee rol, alta tramitada por E.E. - 34142629 - 2025 - ESC200866" {
		t.Errorf("Role = %q", rec.Role)
	}
	if rec.ReviewStatus != "3" || rec.PositionDescription != "MAESTRO DE GRADO Turno Mañana" {
		t.Errorf("ReviewStatus=%q PositionDescription=%q", rec.ReviewStatus, rec.PositionDescription)
	}
	if len(sessions.saved) != 1 || sessions.saved[0].Strategy != "rules" {
		t.Fatalf("sessions = %+v", sessions.saved)
	}
}

func TestAnalyze_SessionSaveFailureReturnsNoRecord(t *testing.T) {
	saveErr := errors.New("disk full")
	p := newProcessor(&fakeOracle{out: sourceJSON}, nil, llm.StrategyRules, &memSessions{saveErr: saveErr})

	rec, err := p.Analyze(context.Background(), "texto OCR")
	if !errors.Is(err, saveErr) {
		t.Fatalf("Analyze() error = %v, want %v", err, saveErr)
	}
	if rec != (report.Record{}) {
		t.Fatalf("record returned with error: %+v", rec)
	}
}

func TestAnalyze_OracleFailureIsProcessingFailed(t *testing.T) {
	fo := &fakeOracle{err: errors.New("connection refused")}
	sessions := &memSessions{}
	p := newProcessor(fo, nil, llm.StrategyDirective, sessions)

	rec, err := p.Analyze(context.Background(), "texto")
	if !errors.Is(err, common.ErrProcessingFailed) {
		t.Fatalf("Analyze() error = %v, want ErrProcessingFailed", err)
	}
	if common.UserMessage(err) != common.ProcessingFailedMessage {
		t.Fatalf("UserMessage() = %q", common.UserMessage(err))
	}
	if rec != (report.Record{}) {
		t.Fatalf("partial record returned: %+v", rec)
	}
	if len(sessions.saved) != 0 {
		t.Fatal("failed analysis must not touch the session")
	}
}

func TestAnalyze_MalformedResponseIsProcessingFailed(t *testing.T) {
	fo := &fakeOracle{out: `{"cuil": 12}`}
	p := newProcessor(fo, nil, llm.StrategyDirective, nil)

	if _, err := p.Analyze(context.Background(), "texto"); !errors.Is(err, common.ErrProcessingFailed) {
		t.Fatalf("Analyze() error = %v, want ErrProcessingFailed", err)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	fo := &fakeOracle{out: sourceJSON}
	p := newProcessor(fo, nil, llm.StrategyRules, nil)

	if _, err := p.Analyze(context.Background(), "  \n "); !errors.Is(err, common.ErrProcessingFailed) {
		t.Fatalf("Analyze() error = %v", err)
	}
	if fo.calls != 0 {
		t.Fatal("oracle must not be called for empty text")
	}
}

func TestAnalyzeFile(t *testing.T) {
	fo := &fakeOracle{out: sourceJSON}
	tx := fakeText{res: extract.TextExtractionResult{Text: "FTW texto", Method: "pdf-text", Pages: 2}}
	sessions := &memSessions{}
	p := newProcessor(fo, tx, llm.StrategyRules, sessions)

	if _, err := p.AnalyzeFile(context.Background(), "scan.pdf"); err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}
	if !strings.Contains(fo.last.Instructions, "FTW texto") {
		t.Fatal("extracted text was not sent to the oracle")
	}
	if sessions.saved[0].Source != "scan.pdf" {
		t.Fatalf("Source = %q", sessions.saved[0].Source)
	}
}

func TestAnalyzeFile_UnsupportedFormat(t *testing.T) {
	p := newProcessor(&fakeOracle{}, fakeText{}, llm.StrategyRules, nil)
	_, err := p.AnalyzeFile(context.Background(), "scan.docx")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("AnalyzeFile() error = %v, want ErrInvalidInput", err)
	}
}
