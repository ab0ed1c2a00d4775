package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/service"
	"github.com/MKhiriev/go-chat-sync/internal/utils"
	"github.com/MKhiriev/go-chat-sync/models"
)

// App is the terminal chat client. It reads commands line by line, runs them
// against the services and prints realtime activity as it arrives.
type App struct {
	services  *service.ClientServices
	in        io.Reader
	out       *Printer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu   sync.RWMutex
	chat *service.ChatSession
}

func NewApp(services *service.ClientServices, in io.Reader, out *Printer, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if in == nil || out == nil {
		return nil, errors.New("input and output are required")
	}

	return &App{
		services:  services,
		in:        in,
		out:       out,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run blocks until the input ends, the user quits or the process receives
// an interrupt.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(a.logger.WithContext(ctx))
}

func (a *App) run(ctx context.Context) error {
	unsubscribe := a.services.Link.Subscribe(a.onEvent)
	defer func() {
		a.closeChat()
		unsubscribe()
		// the stored token is kept for the next start
		a.services.Link.Disconnect()
	}()

	a.restore(ctx)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "App.run").Msg("reading input failed")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.expired():
			a.logger.Info().Str("func", "App.run").Msg("session rejected by server, logging out")
			a.closeChat()
			a.services.Session.Logout(ctx, true)
			a.out.Println("Session expired, please log in again.")
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := a.exec(ctx, line)
			if err != nil {
				a.out.Printf("error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

func (a *App) restore(ctx context.Context) {
	sess, err := a.services.Session.Restore(ctx)
	switch {
	case err == nil:
		a.openChat(ctx, sess)
		a.out.Printf("Welcome back, %s.\n", displayName(sess.User))
	case errors.Is(err, service.ErrNoStoredSession):
		a.out.Println("Not logged in. Type 'login' or 'signup', 'help' for all commands.")
	default:
		a.logger.Err(err).Str("func", "App.restore").Msg("stored session not restored")
		a.out.Printf("Stored session is no longer valid (%v). Please log in.\n", err)
	}
}

// exec runs one input line. quit reports whether the loop should stop.
func (a *App) exec(ctx context.Context, line string) (quit bool, err error) {
	cmd, err := parseCommand(line)
	if err != nil || cmd.name == "" {
		return false, err
	}

	switch cmd.name {
	case "quit":
		return true, nil
	case "help":
		a.out.Printf("Commands:\n%s", helpText())
		return false, nil
	case "version":
		a.out.Printf("version %s, built %s, commit %s\n",
			a.buildInfo.BuildVersion(), a.buildInfo.BuildDate(), a.buildInfo.BuildCommit())
		return false, nil
	case "signup":
		return false, a.login(ctx, models.AuthModeSignup, models.Credentials{
			Email:    cmd.args[0],
			Password: cmd.args[1],
			FullName: cmd.rest(2),
		})
	case "login":
		return false, a.login(ctx, models.AuthModeLogin, models.Credentials{
			Email:    cmd.args[0],
			Password: cmd.args[1],
		})
	case "logout":
		a.closeChat()
		a.services.Session.Logout(ctx, false)
		return false, nil
	case "whoami":
		return false, a.whoami()
	case "profile":
		return false, a.updateProfile(ctx, cmd)
	}

	chat := a.currentChat()
	if chat == nil {
		return false, ErrNotLoggedIn
	}

	switch cmd.name {
	case "users":
		return false, a.listPeers(ctx, chat, cmd.rest(0))
	case "online":
		a.listOnline(chat)
	case "open":
		return false, a.openConversation(ctx, chat, cmd.args[0])
	case "close":
		chat.Conversations.Deselect()
	case "send":
		return false, a.send(ctx, chat, cmd.rest(0), nil)
	case "image":
		data, err := os.ReadFile(cmd.args[0])
		if err != nil {
			return false, fmt.Errorf("read image: %w", err)
		}
		return false, a.send(ctx, chat, cmd.rest(1), data)
	case "history":
		peerID := chat.Conversations.Selected()
		if peerID == "" {
			return false, ErrNoPeerSelected
		}
		a.printTimeline(chat, chat.Conversations.Messages(peerID))
	case "media":
		return false, a.listMedia(chat)
	}

	return false, nil
}

func (a *App) login(ctx context.Context, mode models.AuthMode, creds models.Credentials) error {
	sess, err := a.services.Session.Login(ctx, mode, creds)
	if err != nil {
		return err
	}

	a.closeChat()
	a.openChat(ctx, sess)
	return nil
}

func (a *App) whoami() error {
	sess, ok := a.services.Session.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	a.out.Printf("%s <%s> id=%s\n", displayName(sess.User), sess.User.Email, sess.UserID)
	if sess.User.Bio != "" {
		a.out.Printf("  %s\n", sess.User.Bio)
	}
	a.out.Printf("  connection: %s\n", a.services.Link.State())
	return nil
}

func (a *App) updateProfile(ctx context.Context, cmd command) error {
	value := cmd.rest(1)

	var update models.ProfileUpdate
	switch strings.ToLower(cmd.args[0]) {
	case "name":
		update.FullName = &value
	case "bio":
		update.Bio = &value
	default:
		return fmt.Errorf("%w: usage: %s", ErrUsage, commands["profile"].usage)
	}

	_, err := a.services.Session.UpdateProfile(ctx, update)
	if errors.Is(err, service.ErrTokenExpired) {
		// the session service has already logged out
		a.closeChat()
		a.out.Println("Session expired, please log in again.")
	}
	return err
}

func (a *App) listPeers(ctx context.Context, chat *service.ChatSession, filter string) error {
	if _, err := chat.Conversations.ListPeers(ctx); err != nil {
		return err
	}

	peers := chat.Conversations.Peers(filter)
	if len(peers) == 0 {
		a.out.Println("No users.")
		return nil
	}

	for _, p := range peers {
		mark := " "
		if a.services.Presence.IsOnline(p.ID) {
			mark = "*"
		}
		line := fmt.Sprintf("%s %-24s %s", mark, p.ID, displayName(p))
		if n := chat.Conversations.Unseen(p.ID); n > 0 {
			line += fmt.Sprintf(" (%d new)", n)
		}
		a.out.Println(line)
	}
	return nil
}

func (a *App) listOnline(chat *service.ChatSession) {
	ids := a.services.Presence.Online()
	if len(ids) == 0 {
		a.out.Println("Nobody is online.")
		return
	}

	names := a.peerNames(chat)
	for _, id := range ids {
		if id == chat.Session.UserID {
			continue
		}
		a.out.Printf("* %-24s %s\n", id, nameOr(names, id))
	}
}

func (a *App) openConversation(ctx context.Context, chat *service.ChatSession, peerID string) error {
	msgs, err := chat.Conversations.SelectPeer(ctx, peerID)
	if errors.Is(err, service.ErrStaleResponse) {
		return nil
	}
	if err != nil {
		return err
	}

	a.out.Printf("── %s ──\n", nameOr(a.peerNames(chat), peerID))
	a.printTimeline(chat, msgs)
	return nil
}

func (a *App) send(ctx context.Context, chat *service.ChatSession, text string, image []byte) error {
	peerID := chat.Conversations.Selected()
	if peerID == "" {
		return ErrNoPeerSelected
	}

	_, err := chat.Conversations.SendMessage(ctx, peerID, text, image)
	return err
}

func (a *App) listMedia(chat *service.ChatSession) error {
	peerID := chat.Conversations.Selected()
	if peerID == "" {
		return ErrNoPeerSelected
	}

	images := chat.Conversations.Images(peerID)
	if len(images) == 0 {
		a.out.Println("No media.")
		return nil
	}
	for i, ref := range images {
		if utils.IsImageDataURL(ref) {
			a.out.Printf("%d. inline %s\n", i+1, shorten(ref, 40))
			continue
		}
		a.out.Printf("%d. %s\n", i+1, ref)
	}
	return nil
}

func (a *App) printTimeline(chat *service.ChatSession, msgs []models.Message) {
	if len(msgs) == 0 {
		a.out.Println("No messages yet.")
		return
	}

	names := a.peerNames(chat)
	for _, m := range msgs {
		a.out.Println(formatMessage(m, chat.Session.UserID, names))
	}
}

// onEvent runs on the realtime reader goroutine.
func (a *App) onEvent(ev realtime.Event) {
	switch e := ev.(type) {
	case realtime.StateChanged:
		if e.Err != nil {
			a.out.Printf("connection %s: %v\n", e.State, e.Err)
			return
		}
		a.out.Printf("connection %s\n", e.State)
	case realtime.MessageArrived:
		chat := a.currentChat()
		if chat == nil || e.Message.ReceiverID != chat.Session.UserID {
			return
		}
		names := a.peerNames(chat)
		if chat.Conversations.Selected() == e.Message.SenderID {
			a.out.Println(formatMessage(e.Message, chat.Session.UserID, names))
			return
		}
		a.out.Printf("new message from %s\n", nameOr(names, e.Message.SenderID))
	}
}

func (a *App) openChat(ctx context.Context, sess models.Session) {
	chat := a.services.OpenChat(ctx, sess)

	a.mu.Lock()
	a.chat = chat
	a.mu.Unlock()
}

func (a *App) closeChat() {
	a.mu.Lock()
	chat := a.chat
	a.chat = nil
	a.mu.Unlock()

	if chat != nil {
		chat.Close()
	}
}

func (a *App) currentChat() *service.ChatSession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.chat
}

// expired returns a nil channel while logged out so the select never fires.
func (a *App) expired() <-chan struct{} {
	chat := a.currentChat()
	if chat == nil {
		return nil
	}
	return chat.Expired()
}

func (a *App) peerNames(chat *service.ChatSession) map[string]string {
	peers := chat.Conversations.Peers("")
	names := make(map[string]string, len(peers)+1)
	for _, p := range peers {
		names[p.ID] = displayName(p)
	}
	names[chat.Session.UserID] = "you"
	return names
}

func formatMessage(m models.Message, selfID string, names map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s:", m.CreatedAt.Local().Format(time.Kitchen), nameOr(names, m.SenderID))
	if m.Text != "" {
		b.WriteString(" " + m.Text)
	}
	if m.Image != "" {
		b.WriteString(" [image]")
	}
	if m.SenderID == selfID && m.Seen {
		b.WriteString(" ✓")
	}
	return b.String()
}

func displayName(u models.User) string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.ID
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return id
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
