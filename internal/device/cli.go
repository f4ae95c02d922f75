package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/heartmarshall/flashcards/internal/adapter/cloud"
	"github.com/heartmarshall/flashcards/internal/adapter/local"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

const usage = `usage: flashcards [flags] <command> [args]

commands:
  decks                              list decks with due counts
  deck-create <name>                 create a deck
  deck-rename <deck-id> <name>       rename a deck
  deck-delete <deck-id>              delete a deck and its cards
  cards <deck-id>                    list the cards of a deck
  card-add <deck-id> <front> <back>  add a card
  card-edit <card-id> <front> <back> change a card's text
  card-delete <card-id>              delete a card
  counts                             due counts per deck
  review <deck-id>                   study the cards due today
  convert [--keep-local] <deck-id>   move a local deck to the cloud
  catalog                            list public decks
  catalog-import <public-deck-id>    copy a public deck into your decks
  signup [username]                  create a cloud account
  login [username]                   start a cloud session
  logout                             end the cloud session
`

// App runs one CLI command against the configured backend.
type App struct {
	cfg      *Config
	store    Store
	local    *local.Store
	client   *cloud.Client
	sessions *SessionFile
	log      *slog.Logger

	in           *bufio.Reader
	out          io.Writer
	readPassword func(fd int) ([]byte, error)
	now          func() time.Time
	newID        func() string
}

// Open opens the local database and prepares the cloud client with any
// saved session. Close releases both.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger, in io.Reader, out io.Writer) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := local.Open(ctx, cfg.DBPath())
	if err != nil {
		return nil, err
	}

	client, err := cloud.New(cfg.Server, logger,
		cloud.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		cloud.WithCookieName(cfg.CookieName),
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessions := NewSessionFile(cfg.SessionPath())
	saved, err := sessions.Load()
	if err != nil {
		db.Close()
		return nil, err
	}
	client.SetSession(saved)

	return newApp(cfg, db, client, sessions, logger, in, out), nil
}

func newApp(cfg *Config, db *local.Store, client *cloud.Client, sessions *SessionFile, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		cfg:          cfg,
		local:        db,
		client:       client,
		sessions:     sessions,
		log:          logger,
		in:           bufio.NewReader(in),
		out:          out,
		readPassword: term.ReadPassword,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	a.store = Store(db)
	if cfg.Mode == ModeCloud {
		a.store = NewCloudStore(client)
	}
	return a
}

// Close closes the local database.
func (a *App) Close() error {
	return a.local.Close()
}

type command struct {
	minArgs int
	run     func(ctx context.Context, args []string) error
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	commands := map[string]command{
		"decks":          {0, a.listDecks},
		"deck-create":    {1, a.createDeck},
		"deck-rename":    {2, a.renameDeck},
		"deck-delete":    {1, a.deleteDeck},
		"cards":          {1, a.listCards},
		"card-add":       {3, a.addCard},
		"card-edit":      {3, a.editCard},
		"card-delete":    {1, a.deleteCard},
		"counts":         {0, a.counts},
		"review":         {1, a.review},
		"convert":        {1, a.convert},
		"catalog":        {0, a.catalog},
		"catalog-import": {1, a.catalogImport},
		"signup":         {0, a.signup},
		"login":          {0, a.login},
		"logout":         {0, a.logout},
	}

	if len(args) == 0 || args[0] == "help" {
		fmt.Fprint(a.out, usage)
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	if len(args)-1 < cmd.minArgs {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s needs %d argument(s)", ErrUsage, args[0], cmd.minArgs)
	}
	return cmd.run(ctx, args[1:])
}

func (a *App) deckType() domain.DeckType {
	if a.cfg.Mode == ModeCloud {
		return domain.DeckTypeCloud
	}
	return domain.DeckTypeLocal
}

// ---------------------------------------------------------------------------
// Decks
// ---------------------------------------------------------------------------

func (a *App) listDecks(ctx context.Context, _ []string) error {
	decks, err := a.store.GetAllDecks(ctx)
	if err != nil {
		return err
	}
	counts, err := a.store.GetCardCounts(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tNEW\tDUE")
	for _, d := range decks {
		c := counts[d.ID]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", d.ID, d.Name, c.New, c.Old)
	}
	return tw.Flush()
}

func (a *App) createDeck(ctx context.Context, args []string) error {
	d := domain.NewDeck(a.newID(), strings.Join(args, " "), a.deckType(), a.now().UTC())
	if err := d.Validate(); err != nil {
		return err
	}
	created, err := a.store.CreateDeck(ctx, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created deck %s\n", created.ID)
	return nil
}

func (a *App) renameDeck(ctx context.Context, args []string) error {
	d, err := a.store.GetDeck(ctx, args[0])
	if err != nil {
		return err
	}
	d.Name = strings.Join(args[1:], " ")
	d.Updated = a.now().UTC()
	if err := d.Validate(); err != nil {
		return err
	}
	if _, err := a.store.UpdateDeck(ctx, *d); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "renamed deck %s\n", d.ID)
	return nil
}

func (a *App) deleteDeck(ctx context.Context, args []string) error {
	if err := a.store.DeleteDeck(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted deck %s\n", args[0])
	return nil
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

func (a *App) listCards(ctx context.Context, args []string) error {
	cards, err := a.store.GetAllCardsFromDeck(ctx, args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFRONT\tBACK\tDUE\tSTATE")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Front, c.Back, c.Due.In(time.Local).Format(time.DateOnly), c.State)
	}
	return tw.Flush()
}

func (a *App) addCard(ctx context.Context, args []string) error {
	c := domain.NewCard(a.newID(), args[0], args[1], args[2], nil, a.now().UTC())
	created, err := a.store.CreateCard(ctx, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created card %s\n", created.ID)
	return nil
}

func (a *App) editCard(ctx context.Context, args []string) error {
	c, err := a.store.GetCard(ctx, args[0])
	if err != nil {
		return err
	}
	c.Front, c.Back = args[1], args[2]
	c.Updated = a.now().UTC()
	if _, err := a.store.UpdateCard(ctx, *c); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated card %s\n", c.ID)
	return nil
}

func (a *App) deleteCard(ctx context.Context, args []string) error {
	if err := a.store.DeleteCard(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted card %s\n", args[0])
	return nil
}

// ---------------------------------------------------------------------------
// Study
// ---------------------------------------------------------------------------

func (a *App) counts(ctx context.Context, _ []string) error {
	counts, err := a.store.GetCardCounts(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DECK\tNEW\tDUE")
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", id, counts[id].New, counts[id].Old)
	}
	return tw.Flush()
}

func (a *App) review(ctx context.Context, args []string) error {
	r := NewReviewer(a.store)
	r.now = a.now

	due, err := r.Due(ctx, args[0])
	if err != nil {
		return err
	}
	if len(due) == 0 {
		fmt.Fprintln(a.out, "nothing due")
		return nil
	}

	reviewed := 0
	for _, c := range due {
		fmt.Fprintf(a.out, "\n%s\n(press Enter to show the answer)", c.Front)
		if _, err := a.readLine(); err != nil {
			break
		}
		fmt.Fprintf(a.out, "%s\n", c.Back)

		grade, quit, err := a.askGrade()
		if err != nil || quit {
			break
		}
		if _, err := r.Review(ctx, c.ID, grade); err != nil {
			return err
		}
		reviewed++
	}

	fmt.Fprintf(a.out, "reviewed %d of %d cards\n", reviewed, len(due))
	return nil
}

func (a *App) askGrade() (domain.ReviewGrade, bool, error) {
	for {
		fmt.Fprint(a.out, "grade [1 again, 2 hard, 3 good, 4 easy, q quit]: ")
		line, err := a.readLine()
		if err != nil {
			return 0, false, err
		}
		if line == "q" {
			return 0, true, nil
		}
		g, err := domain.ParseReviewGrade(line)
		if err == nil {
			return g, false, nil
		}
		fmt.Fprintln(a.out, err)
	}
}

func (a *App) convert(ctx context.Context, args []string) error {
	fset := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	fset.SetOutput(a.out)
	keepLocal := fset.Bool("keep-local", false, "keep the local copy after upload")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fset.NArg() != 1 {
		return fmt.Errorf("%w: convert needs a deck id", ErrUsage)
	}

	conv := NewConverter(a.local, cloudConverter{a.client}, a.log)
	n, err := conv.Convert(ctx, fset.Arg(0), *keepLocal)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "converted deck %s with %d cards\n", fset.Arg(0), n)
	return nil
}

type cloudConverter struct{ client *cloud.Client }

func (c cloudConverter) Convert(ctx context.Context, deck domain.Deck, cards []domain.Card) error {
	return translate(c.client.Convert(ctx, deck, cards))
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func (a *App) catalog(ctx context.Context, _ []string) error {
	decks, err := a.client.PublicDecks(ctx)
	if err != nil {
		return translate(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCARDS\tDOWNLOADS")
	for _, d := range decks {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", d.ID, d.Name, d.Cards, d.Downloads)
	}
	return tw.Flush()
}

func (a *App) catalogImport(ctx context.Context, args []string) error {
	im := NewImporter(a.client, a.store, a.deckType())
	im.newID = a.newID
	im.now = a.now

	deck, n, err := im.Import(ctx, args[0])
	if err != nil {
		return translate(err)
	}
	fmt.Fprintf(a.out, "imported %q as deck %s with %d cards\n", deck.Name, deck.ID, n)
	return nil
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

func (a *App) signup(ctx context.Context, args []string) error {
	return a.authenticate(ctx, args, a.client.Signup, "account created")
}

func (a *App) login(ctx context.Context, args []string) error {
	return a.authenticate(ctx, args, a.client.Login, "logged in")
}

func (a *App) authenticate(ctx context.Context, args []string, call func(ctx context.Context, username, password string) error, done string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		fmt.Fprint(a.out, "username: ")
		line, err := a.readLine()
		if err != nil {
			return err
		}
		username = line
	}

	fmt.Fprint(a.out, "password: ")
	pw, err := a.readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if err := call(ctx, username, string(pw)); err != nil {
		return err
	}
	if err := a.sessions.Save(a.client.Session()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, done)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.WarnContext(ctx, "server logout failed", slog.String("error", err.Error()))
	}
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
