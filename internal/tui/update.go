package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/atelier/internal/tui/commands"
)

const statusDuration = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case commands.PortfolioLoadedMsg:
		if !m.controller.AcceptPortfolio(msg.Gen, msg.Items) {
			m.logger.Debug("discarding superseded response",
				zap.String("dataset", string(commands.PortfolioDataset)), zap.Uint64("gen", msg.Gen))
			return m, nil
		}
		m.logger.Debug("dataset loaded",
			zap.String("dataset", string(commands.PortfolioDataset)), zap.Uint64("gen", msg.Gen), zap.Int("count", len(msg.Items)))
		return m, nil

	case commands.FeaturedLoadedMsg:
		if !m.controller.AcceptFeatured(msg.Gen, msg.Items) {
			m.logger.Debug("discarding superseded response",
				zap.String("dataset", string(commands.FeaturedDataset)), zap.Uint64("gen", msg.Gen))
			return m, nil
		}
		m.logger.Debug("dataset loaded",
			zap.String("dataset", string(commands.FeaturedDataset)), zap.Uint64("gen", msg.Gen), zap.Int("count", len(msg.Items)))
		return m, nil

	case commands.LoadFailedMsg:
		// The grid keeps whatever it showed before the request.
		m.logger.Error("load failed",
			zap.String("dataset", string(msg.Dataset)), zap.Uint64("gen", msg.Gen), zap.Error(msg.Err))
		return m, nil

	case commands.DocumentChangedMsg:
		m.logger.Debug("document changed", zap.String("name", msg.Name))
		cmds := []tea.Cmd{commands.WaitForChange(m.watcher)}
		switch msg.Name {
		case m.config.Source.PortfolioFile:
			cmds = append(cmds, m.loadPortfolio())
		case m.config.Source.FeaturedFile:
			cmds = append(cmds, m.loadFeatured())
		}
		return m, tea.Batch(cmds...)

	case commands.ErrMsg:
		m.logger.Warn("command failed", zap.Error(msg.Err))
		m.statusMsg = "Copy failed"
		m.statusTime = time.Now().Add(statusDuration)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(statusDuration)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}
