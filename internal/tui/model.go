package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alimgen/internal/domain"
)

// GeneratorPort is the TUI-facing subset of the template system.
type GeneratorPort interface {
	Generate(ctx context.Context, userInput string) (domain.GenerationResult, error)
}

// The result can be inspected from three angles; tab cycles through them.
const (
	viewTemplate = iota
	viewFilled
	viewEntities
	viewCount
)

var viewTitles = [viewCount]string{"생성된 템플릿", "미리보기 (값 채움)", "추출된 정보"}

// Model is the Bubble Tea model for the interactive template generator.
type Model struct {
	service  GeneratorPort
	input    textinput.Model
	viewport viewport.Model
	result   *domain.GenerationResult
	summary  string
	status   string
	view     int
	ready    bool
}

// New creates a new TUI model instance.
func New(service GeneratorPort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "➤ "
	ti.Placeholder = "알림톡 내용을 설명해주세요 (Enter로 생성)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, input: ti, viewport: vp, summary: summary, status: "준비 완료. 요청을 입력하세요."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, query box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				res, err := m.service.Generate(context.Background(), q)
				if err != nil {
					m.status = "오류: " + err.Error()
					m.result = nil
				} else {
					m.status = fmt.Sprintf("%q 템플릿 생성 완료, 변수 %d개 (Tab: 보기 전환)", q, len(res.Variables))
					m.result = &res
					m.view = viewTemplate
				}
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		case "tab":
			if m.result != nil {
				m.view = (m.view + 1) % viewCount
				m.viewport.SetContent(m.renderResult())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("알림톡 템플릿 생성기")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	result := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + result + "\n" + input + "\n" + status
}

func (m Model) renderResult() string {
	if m.result == nil {
		return "아직 생성된 템플릿이 없습니다."
	}
	title := titleStyle.Render(fmt.Sprintf("%s (%d/%d)", viewTitles[m.view], m.view+1, viewCount))
	switch m.view {
	case viewFilled:
		return title + "\n\n" + m.result.FilledTemplate
	case viewEntities:
		return title + "\n\n" + renderEntities(*m.result)
	default:
		return title + "\n\n" + m.result.GeneratedTemplate
	}
}

func renderEntities(res domain.GenerationResult) string {
	info := res.Entities.ExtractedInfo
	var b strings.Builder
	fmt.Fprintf(&b, "변수 (%d개): %s\n\n", len(res.Variables), strings.Join(res.Variables, ", "))
	writeCategory(&b, "📅 날짜", info.Dates)
	writeCategory(&b, "👤 이름", info.Names)
	writeCategory(&b, "📍 장소", info.Locations)
	writeCategory(&b, "🎉 이벤트", info.Events)
	writeCategory(&b, "ℹ️ 기타", info.Others)
	fmt.Fprintf(&b, "\n의도: %s\n유형: %s\n긴급도: %s\n대상: %s\n",
		res.Entities.MessageIntent, res.Entities.MessageType,
		res.Entities.UrgencyLevel, res.Entities.TargetAudience)
	return b.String()
}

func writeCategory(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(values, ", "))
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
