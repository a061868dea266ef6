// Package bubbletea provides the interactive terminal UI: enter a URL,
// inspect the extracted content, and request a summary.
package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pagebrief/pagebrief"
)

// Runner executes the summarization pipeline for one fetched document.
// *pipeline.Pipeline satisfies it.
type Runner interface {
	Run(ctx context.Context, doc *pagebrief.Document) (*pagebrief.Summary, error)
}

type state int

const (
	stateInput state = iota
	stateFetching
	stateReady // content extracted, preview visible
	stateSummarizing
	stateDone // summary visible
)

// Model is the Bubble Tea model for the UI.
type Model struct {
	fetcher   pagebrief.Fetcher
	extractor pagebrief.Extractor
	runner    Runner

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	state       state
	url         string
	html        string
	content     string
	summary     string
	status      string
	showContent bool // in stateDone, toggle between summary and content
	sized       bool
}

type fetchedMsg struct {
	url     string
	html    string
	content string
	err     error
}

type summarizedMsg struct {
	summary *pagebrief.Summary
	err     error
}

// FetchedMsg reports a completed fetch and extraction.
func FetchedMsg(url, html, content string) tea.Msg {
	return fetchedMsg{url: url, html: html, content: content}
}

// FetchedErrMsg reports a failed fetch or extraction.
func FetchedErrMsg(url string, err error) tea.Msg {
	return fetchedMsg{url: url, err: err}
}

// SummarizedMsg reports a completed summarization.
func SummarizedMsg(summary *pagebrief.Summary) tea.Msg {
	return summarizedMsg{summary: summary}
}

// New creates a new UI model.
func New(fetcher pagebrief.Fetcher, extractor pagebrief.Extractor, runner Runner) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter a URL and press Enter"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		fetcher:   fetcher,
		extractor: extractor,
		runner:    runner,
		input:     ti,
		viewport:  viewport.New(0, 0),
		spin:      sp,
		status:    "Enter a URL to fetch.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and pipeline-completion events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.sized = true
		_, frame := contentBoxStyle.GetFrameSize()
		height := msg.Height - frame - 6 // title, input, status, spacers
		if height < 3 {
			height = 3
		}
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = height
		m.viewport.SetContent(m.body())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (msg.String() == "q" && !m.input.Focused()) {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			url := strings.TrimSpace(m.input.Value())
			if url != "" && m.state != stateFetching && m.state != stateSummarizing {
				m.url = url
				m.state = stateFetching
				m.status = "Fetching " + url + " ..."
				m.input.Blur()
				return m, tea.Batch(m.spin.Tick, m.fetchCmd(url))
			}
		case "s":
			if m.state == stateReady && !m.input.Focused() {
				m.state = stateSummarizing
				m.status = "Summarizing ..."
				return m, tea.Batch(m.spin.Tick, m.summarizeCmd())
			}
		case "tab":
			if m.state == stateDone {
				m.showContent = !m.showContent
				m.viewport.SetContent(m.body())
				return m, nil
			}
		case "n":
			if !m.input.Focused() && (m.state == stateReady || m.state == stateDone) {
				m.state = stateInput
				m.input.SetValue("")
				m.input.Focus()
				m.status = "Enter a URL to fetch."
				return m, textinput.Blink
			}
		}

	case fetchedMsg:
		if msg.err != nil {
			m.state = stateInput
			m.status = "Error: " + pagebrief.ErrorMessage(msg.err)
			m.input.Focus()
			return m, nil
		}
		if msg.content == "" {
			m.state = stateInput
			m.status = "No readable content found on that page."
			m.input.Focus()
			return m, nil
		}
		m.state = stateReady
		m.html = msg.html
		m.content = msg.content
		m.status = "Content extracted. Press 's' to summarize, 'n' for a new URL."
		m.viewport.SetContent(m.body())
		return m, nil

	case summarizedMsg:
		if msg.err != nil {
			m.state = stateReady
			m.status = "Error: " + pagebrief.ErrorMessage(msg.err)
			return m, nil
		}
		m.state = stateDone
		m.summary = msg.summary.Text
		m.showContent = false
		m.status = "Done. Press 'tab' to toggle content, 'n' for a new URL, 'q' to quit."
		m.viewport.SetContent(m.body())
		return m, nil

	case spinner.TickMsg:
		if m.state == stateFetching || m.state == stateSummarizing {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the UI layout.
func (m Model) View() string {
	if !m.sized {
		return "Loading..."
	}

	title := titleStyle.Render("pagebrief")
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.statusLine())
	body := contentBoxStyle.Render(m.viewport.View())

	return title + "\n" + input + "\n" + body + "\n" + status
}

func (m Model) statusLine() string {
	if m.state == stateFetching || m.state == stateSummarizing {
		return m.spin.View() + " " + m.status
	}
	return m.status
}

// body returns the viewport content for the current state.
func (m Model) body() string {
	switch m.state {
	case stateDone:
		if m.showContent {
			return headerStyle.Render("Extracted content — "+m.url) + "\n\n" + m.content
		}
		return headerStyle.Render("Summary — "+m.url) + "\n\n" + m.summary
	case stateReady, stateSummarizing:
		return headerStyle.Render("Extracted content — "+m.url) + "\n\n" + m.content
	default:
		return "Nothing fetched yet."
	}
}

// fetchCmd fetches the URL and extracts its content off the UI loop.
func (m Model) fetchCmd(url string) tea.Cmd {
	fetcher, extractor := m.fetcher, m.extractor
	return func() tea.Msg {
		html, err := fetcher.Fetch(context.Background(), url)
		if err != nil {
			return fetchedMsg{url: url, err: err}
		}
		content, err := extractor.Extract(html)
		if err != nil {
			return fetchedMsg{url: url, err: err}
		}
		return fetchedMsg{url: url, html: html, content: content}
	}
}

// summarizeCmd runs the pipeline off the UI loop.
func (m Model) summarizeCmd() tea.Cmd {
	runner := m.runner
	doc := &pagebrief.Document{URL: m.url, HTML: m.html}
	return func() tea.Msg {
		summary, err := runner.Run(context.Background(), doc)
		return summarizedMsg{summary: summary, err: err}
	}
}

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	contentBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
