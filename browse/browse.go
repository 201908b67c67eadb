// Package browse is a line-oriented catalog browser. Each input line is one
// user event; every event recomputes the query, writes the new state to the
// bound URL and prints the visible page.
package browse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"go-storefront/catalog"
	"go-storefront/format"
	"go-storefront/models"
	"go-storefront/source"
	"go-storefront/urlstate"
)

const helpText = `Comandos:
  search <texto>       buscar en título, descripción y categoría
  category <clave>     filtrar por categoría ("all" para todas)
  min <precio>         precio mínimo en CLP
  max <precio>         precio máximo en CLP
  rating <n>           valoración mínima (0 para todas)
  sort <clave>         default, price-asc, price-desc, rating, name
  page <n> | next | prev
  show <id>            ver el detalle de un producto
  clear                quitar todos los filtros
  back                 volver al estado anterior
  retry                volver a cargar el catálogo
  quit`

// backNavigator is a History that can step back to the previous location
type backNavigator interface {
	Back() (string, bool)
}

// Browser drives one interactive session
type Browser struct {
	loader  *source.Loader
	history urlstate.History
	binding *urlstate.Binding
	session *catalog.Session
	out     io.Writer
	logger  *zap.Logger
}

// New creates a browser whose initial state is read from history
func New(loader *source.Loader, history urlstate.History, out io.Writer, logger *zap.Logger) *Browser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Browser{
		loader:  loader,
		history: history,
		binding: urlstate.NewBinding(history),
		session: catalog.NewSession(),
		out:     out,
		logger:  logger,
	}
}

// State returns the current query state
func (b *Browser) State() models.QueryState {
	return b.binding.State()
}

// Run renders the initial view and processes commands from in until quit,
// end of input or ctx cancellation.
func (b *Browser) Run(ctx context.Context, in io.Reader) error {
	b.render(ctx)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := b.Handle(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Render prints the current view once, failing when the catalog cannot be loaded
func (b *Browser) Render(ctx context.Context) error {
	if _, err := b.loader.Products(ctx); err != nil {
		fmt.Fprintln(b.out, source.FailureMessage)
		return err
	}
	b.render(ctx)
	return nil
}

// Handle processes one command line and reports whether the session should end
func (b *Browser) Handle(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(b.out, helpText)
	case "search":
		b.apply(ctx, func(s *models.QueryState) { s.Search = arg })
	case "category":
		b.apply(ctx, func(s *models.QueryState) { s.Category = categoryArg(arg) })
	case "min", "max":
		b.setPrice(ctx, cmd, arg)
	case "rating":
		rating, err := strconv.ParseFloat(arg, 64)
		if err != nil || rating < 0 || rating > 5 {
			fmt.Fprintf(b.out, "Valoración inválida: %q\n", arg)
			return false
		}
		b.apply(ctx, func(s *models.QueryState) { s.MinRating = rating })
	case "sort":
		b.apply(ctx, func(s *models.QueryState) { s.Sort = models.ParseSortKey(arg) })
	case "page":
		page, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(b.out, "Página inválida: %q\n", arg)
			return false
		}
		b.apply(ctx, func(s *models.QueryState) { s.Page = page })
	case "next":
		b.apply(ctx, func(s *models.QueryState) { s.Page++ })
	case "prev":
		b.apply(ctx, func(s *models.QueryState) { s.Page-- })
	case "clear":
		b.apply(ctx, func(s *models.QueryState) { *s = models.QueryState{} })
	case "back":
		b.back(ctx)
	case "retry":
		if err := b.loader.Load(ctx); err != nil {
			b.logger.Debug("retry failed", zap.Error(err))
		}
		b.render(ctx)
	case "show":
		b.show(ctx, arg)
	default:
		fmt.Fprintf(b.out, "Comando desconocido: %q (escribe help)\n", cmd)
	}
	return false
}

// categoryArg accepts a category key or its display label
func categoryArg(arg string) string {
	if arg == "" || strings.EqualFold(arg, "all") {
		return ""
	}
	return format.CategoryKey(arg)
}

func (b *Browser) setPrice(ctx context.Context, which, input string) {
	products, ok := b.products(ctx)
	if !ok {
		return
	}
	bounds := catalog.PriceBounds(products)

	state := b.binding.State()
	current := bounds
	if state.Price != nil {
		current = *state.Price
	}

	next, valid := current.WithMinInput(input, bounds)
	if which == "max" {
		next, valid = current.WithMaxInput(input, bounds)
	}
	if !valid {
		fmt.Fprintln(b.out, "El precio mínimo no puede ser mayor que el máximo")
		return
	}

	b.apply(ctx, func(s *models.QueryState) {
		if next.Covers(bounds) {
			// not narrower than the catalog, so the filter is inactive
			s.Price = nil
			return
		}
		s.Price = &next
	})
}

func (b *Browser) show(ctx context.Context, arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(b.out, "ID inválido: %q\n", arg)
		return
	}
	products, ok := b.products(ctx)
	if !ok {
		return
	}
	p, found := catalog.Find(products, id)
	if !found {
		fmt.Fprintf(b.out, "Producto #%d no encontrado\n", id)
		return
	}

	d := catalog.Detail(p)
	fmt.Fprintf(b.out, "%s\n%s  %s (%s opiniones)\n%s\n",
		d.Title, d.DisplayPrice, format.Rating(d.Rating.Rate), format.Compact(int64(d.Rating.Count)), d.Description)
	for _, spec := range d.Specifications {
		fmt.Fprintf(b.out, "  %s: %s\n", spec.Label, spec.Value)
	}
}

// apply runs fn against the bound state, recomputes the page and pushes the
// effective state as a single history entry.
func (b *Browser) apply(ctx context.Context, fn func(*models.QueryState)) {
	products, ok := b.products(ctx)
	if !ok {
		// keep the requested state so a retry renders it
		b.binding.Update(fn)
		return
	}

	var res models.QueryResult
	b.binding.Update(func(s *models.QueryState) {
		fn(s)
		res, *s = b.session.Apply(products, *s)
	})
	b.print(res)
}

// render recomputes the view for the bound state
func (b *Browser) render(ctx context.Context) {
	b.apply(ctx, func(*models.QueryState) {})
}

// back restores the previous location. The restored page is taken as is, so
// the session starts over.
func (b *Browser) back(ctx context.Context) {
	nav, ok := b.history.(backNavigator)
	if !ok {
		fmt.Fprintln(b.out, "El historial no permite volver atrás")
		return
	}
	if _, ok := nav.Back(); !ok {
		fmt.Fprintln(b.out, "No hay un estado anterior")
		return
	}
	b.binding.Sync()
	b.session.Reset()
	b.render(ctx)
}

func (b *Browser) products(ctx context.Context) ([]models.Product, bool) {
	products, err := b.loader.Products(ctx)
	if err != nil {
		b.logger.Debug("catalog unavailable", zap.Error(err))
		fmt.Fprintln(b.out, source.FailureMessage)
		fmt.Fprintln(b.out, "Escribe retry para reintentar.")
		return nil, false
	}
	return products, true
}

func (b *Browser) print(res models.QueryResult) {
	if res.Empty() {
		fmt.Fprintln(b.out, "No se encontraron productos con los filtros seleccionados.")
	} else {
		fmt.Fprintf(b.out, "Mostrando %d-%d de %d productos\n", res.FirstItem, res.LastItem, res.TotalCount)
		tw := tabwriter.NewWriter(b.out, 0, 0, 2, ' ', 0)
		for _, p := range res.Items {
			fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n",
				p.ID, p.Title, format.Price(p.Price), p.Category.Label(), format.Rating(p.Rating.Rate))
		}
		tw.Flush()
	}

	fmt.Fprintln(b.out, pageBar(res))
	fmt.Fprintln(b.out, b.binding.URL())
}

// pageBar renders the condensed page list with the current page bracketed
func pageBar(res models.QueryResult) string {
	parts := make([]string, 0, len(res.PageNumbers))
	for _, t := range res.PageNumbers {
		if !t.Ellipsis && t.Page == res.Page {
			parts = append(parts, "["+t.String()+"]")
			continue
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}
