package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/usecase"
)

// discountPresets are cycled with "d".
var discountPresets = []float64{0, 10, 25, 50}

type productItem struct {
	name  string
	price string
}

func (p productItem) Title() string       { return p.name }
func (p productItem) Description() string { return p.price }
func (p productItem) FilterValue() string { return p.name }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	menu   list.Model
	preset int
	width  int

	workspaceFound bool
	workspaceRoot  string
	sessions       []domain.SessionRef

	toast string
	done  bool
}

// Run blocks until the user finishes. deps.Cart holds the result.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Cart == nil {
		deps.Cart = domain.NewShoppingCart()
	}
	if deps.Catalog == nil {
		deps.Catalog = domain.DefaultCatalog()
	}
	if deps.Config.Receipt.LineTemplate == "" {
		deps.Config = domain.DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var items []list.Item
	for _, p := range deps.Catalog.Products() {
		items = append(items, productItem{
			name:  p.Name,
			price: deps.Config.Currency + p.Price.StringFixed(usecase.MoneyPlaces),
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 40, 14)
	l.Title = "Products"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		menu:  l,
	}
}

func (m model) Init() tea.Cmd {
	return cmdRefreshWorkspace(m.deps.WorkspaceLocator)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.menu.SetSize(msg.Width-4, msg.Height/2)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if !msg.found {
			return m, nil
		}
		return m, cmdLoadSessions(m.deps.Sessions, msg.root)

	case sessionsLoadedMsg:
		if msg.err != nil {
			m.log.Debug("tui.sessions_unavailable", "root", msg.root, "err", msg.err)
			return m, nil
		}
		m.sessions = msg.refs
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit

		case "enter", "a":
			m.add()
			return m, nil

		case "d":
			m.preset = (m.preset + 1) % len(discountPresets)
			m.toast = "Discount: " + domain.StrategyFor(discountPresets[m.preset]).String()
			return m, nil

		case "+", "=":
			m.changeQuantity(1)
			return m, nil

		case "-":
			m.changeQuantity(-1)
			return m, nil

		case "x":
			m.remove()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// resetScreen returns the product list and discount preset to their
// starting state. Cart contents are kept.
func (m *model) resetScreen() {
	m.preset = 0
	m.menu.ResetSelected()
	m.done = false
}

func (m model) cartLen() int {
	if m.deps.Cart == nil {
		return 0
	}
	return len(m.deps.Cart.Items())
}

func (m *model) selected() (string, bool) {
	it, ok := m.menu.SelectedItem().(productItem)
	if !ok {
		return "", false
	}
	return it.name, true
}

func (m *model) apply(cmd domain.Command) (usecase.Outcome, bool) {
	out, err := usecase.ApplyCommand(m.deps.Cart, m.deps.Catalog, cmd)
	if err != nil {
		m.log.Info("tui.command_failed", "action", string(cmd.Action), "product", cmd.Product, "err", err)
		m.toast = userMessage(err)
		return out, false
	}
	return out, true
}

func (m *model) add() {
	name, ok := m.selected()
	if !ok {
		return
	}
	out, ok := m.apply(domain.Command{
		Action:   domain.ActionAdd,
		Product:  name,
		Quantity: 1,
		Discount: discountPresets[m.preset],
	})
	if !ok {
		return
	}
	m.log.Info("cart.item_added",
		"item_id", out.Item.ID,
		"product", out.Item.Product.Name,
		"quantity", out.Item.Quantity,
		"discount", out.Item.Discount.String(),
	)
	m.toast = fmt.Sprintf("Added %s (%s discount)", name, out.Item.Discount)
}

// changeQuantity adjusts the first cart entry for the selected product.
// Quantities never drop below one; "x" removes.
func (m *model) changeQuantity(delta int) {
	name, ok := m.selected()
	if !ok {
		return
	}

	var current *domain.CartItem
	for _, it := range m.deps.Cart.Items() {
		if it.Product.Name == name {
			current = it
			break
		}
	}
	if current == nil {
		m.toast = "No " + name + " in cart"
		return
	}

	qty := current.Quantity + delta
	if qty < 1 {
		m.toast = "Press x to remove " + name
		return
	}
	if _, ok := m.apply(domain.Command{Action: domain.ActionUpdate, Product: name, Quantity: qty}); !ok {
		return
	}
	m.log.Info("cart.quantity_updated", "product", name, "quantity", qty, "found", true)
	m.toast = fmt.Sprintf("%s quantity: %d", name, qty)
}

func (m *model) remove() {
	name, ok := m.selected()
	if !ok {
		return
	}
	out, ok := m.apply(domain.Command{Action: domain.ActionRemove, Product: name})
	if !ok {
		return
	}
	m.log.Info("cart.item_removed", "product", name, "removed", out.Removed)
	if out.Removed == 0 {
		m.toast = "No " + name + " in cart"
		return
	}
	m.toast = fmt.Sprintf("Removed %s", name)
}

func (m model) View() string {
	if m.done {
		return ""
	}

	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Heading.Render("shopcart") + "\n" +
		m.theme.Muted.Render("Pick products, apply a discount, check out") + "\n"

	var banner string
	if m.workspaceFound {
		banner = fmt.Sprintf("Workspace: %s", m.workspaceRoot)
		if len(m.sessions) > 0 {
			names := make([]string, 0, len(m.sessions))
			for _, s := range m.sessions {
				names = append(names, s.Name)
			}
			banner += fmt.Sprintf(" | Sessions: %s", strings.Join(names, ", "))
		}
	} else {
		banner = "No workspace (run `shopcart init` to create one)"
	}
	banner = m.theme.Muted.Render(banner)

	r := domain.NewReceipt(m.deps.Cart)
	cart := m.theme.Heading.Render("Cart") + "\n" + renderCart(r, m.deps.Config, m.width-8) + "\n\n" +
		m.theme.Total.Render("Total Bill: "+m.deps.Config.Currency+r.Total.StringFixed(usecase.MoneyPlaces))

	discount := m.theme.Muted.Render("Discount: " + domain.StrategyFor(discountPresets[m.preset]).String())
	help := m.theme.Muted.Render("↑/↓ select • enter/a add • d discount • +/- quantity • x remove • q check out")

	out := header + "\n" + banner + "\n\n" +
		m.theme.Panel.Render(m.menu.View()) + "\n" + discount + "\n\n" +
		m.theme.Panel.Render(cart) + "\n" + help
	if m.toast != "" {
		out += "\n" + m.theme.Notice.Render(m.toast)
	}
	return wrap.Render(out)
}
