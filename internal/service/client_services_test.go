package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
	"github.com/MKhiriev/go-chat-sync/internal/config"
	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/mock"
	"github.com/MKhiriev/go-chat-sync/internal/realtime"
	"github.com/MKhiriev/go-chat-sync/internal/store"
	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeLink — RealtimeLink, который раздаёт события подписчикам вручную
type fakeLink struct {
	mu    sync.Mutex
	subs  map[int]realtime.Handler
	next  int
	state realtime.State
}

func newFakeLink() *fakeLink {
	return &fakeLink{subs: make(map[int]realtime.Handler), state: realtime.Connected}
}

func (l *fakeLink) Connect(context.Context, realtime.Identity) error { return nil }
func (l *fakeLink) Disconnect()                                      {}
func (l *fakeLink) Emit(context.Context, string, any) error          { return nil }

func (l *fakeLink) State() realtime.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *fakeLink) Subscribe(h realtime.Handler) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.next
	l.next++
	l.subs[id] = h
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

func (l *fakeLink) dispatch(ev realtime.Event) {
	l.mu.Lock()
	handlers := make([]realtime.Handler, 0, len(l.subs))
	for i := range l.next {
		if h, ok := l.subs[i]; ok {
			handlers = append(handlers, h)
		}
	}
	l.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

func (l *fakeLink) subscribers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

func newTestServices(t *testing.T, ctrl *gomock.Controller) (*ClientServices, *mock.MockServerAdapter, *fakeLink) {
	t.Helper()
	adapterMock := mock.NewMockServerAdapter(ctrl)
	link := newFakeLink()
	storages := &store.ClientStorages{SessionRepository: mock.NewMockLocalSessionRepository(ctrl)}

	cs := NewClientServices(storages, adapterMock, link, &recordingNotifier{}, config.ClientWorkers{
		BaselineInterval: time.Hour,
		AckTimeout:       time.Second,
		AckQueueSize:     4,
	}, logger.Nop())

	return cs, adapterMock, link
}

func TestNewClientServices_PresenceFollowsLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, _, link := newTestServices(t, ctrl)

	link.dispatch(realtime.PresenceSnapshot{IDs: []string{"u1", "u2"}})
	link.dispatch(realtime.PresenceSnapshot{IDs: []string{"u2"}})

	assert.False(t, cs.Presence.IsOnline("u1"))
	assert.True(t, cs.Presence.IsOnline("u2"))
}

func TestClientServices_OpenChat_WiresStoreAndWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, adapterMock, link := newTestServices(t, ctrl)

	var listCalls atomic.Int64
	adapterMock.EXPECT().GetUsers(gomock.Any()).DoAndReturn(func(context.Context) (models.PeerList, error) {
		listCalls.Add(1)
		return models.PeerList{Users: []models.User{alice, bob}, UnseenByPeer: map[string]int{"u2": 2}}, nil
	}).MinTimes(1)

	chat := cs.OpenChat(context.Background(), aliceSession)
	defer chat.Close()

	assert.Equal(t, 2, link.subscribers(), "presence and the chat router")

	// базовая линия загружается сразу после открытия
	require.Eventually(t, func() bool { return chat.Conversations.Unseen("u2") == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []models.User{bob}, chat.Conversations.Peers(""))

	// живые сообщения идут в хранилище
	link.dispatch(realtime.MessageArrived{Message: msg("m9", "u3", "u1", "hey")})
	assert.Equal(t, 1, chat.Conversations.Unseen("u3"))

	// переподключение перезапрашивает базовую линию и она заменяет локальные счётчики
	before := listCalls.Load()
	link.dispatch(realtime.StateChanged{State: realtime.Connected})
	require.Eventually(t, func() bool { return listCalls.Load() > before }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return chat.Conversations.Unseen("u3") == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, chat.Conversations.Unseen("u2"))
}

func TestClientServices_OpenChat_SeenAcksReachServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, adapterMock, link := newTestServices(t, ctrl)

	adapterMock.EXPECT().GetUsers(gomock.Any()).Return(models.PeerList{}, nil).AnyTimes()
	adapterMock.EXPECT().GetMessages(gomock.Any(), "u2").Return(nil, nil)

	acked := make(chan string, 1)
	adapterMock.EXPECT().MarkSeen(gomock.Any(), "m1").DoAndReturn(func(_ context.Context, id string) error {
		acked <- id
		return nil
	})

	chat := cs.OpenChat(context.Background(), aliceSession)
	defer chat.Close()

	_, err := chat.Conversations.SelectPeer(context.Background(), "u2")
	require.NoError(t, err)

	link.dispatch(realtime.MessageArrived{Message: msg("m1", "u2", "u1", "hi")})

	select {
	case id := <-acked:
		assert.Equal(t, "m1", id)
	case <-time.After(time.Second):
		t.Fatal("mark-seen was not issued")
	}
}

func TestClientServices_OpenChat_ExpiredOnRejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, adapterMock, _ := newTestServices(t, ctrl)

	adapterMock.EXPECT().GetUsers(gomock.Any()).Return(models.PeerList{}, fmt.Errorf("%w: jwt expired", adapter.ErrUnauthorized)).MinTimes(1)

	chat := cs.OpenChat(context.Background(), aliceSession)
	defer chat.Close()

	select {
	case <-chat.Expired():
	case <-time.After(time.Second):
		t.Fatal("expired signal was not raised")
	}
}

func TestChatSession_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, adapterMock, link := newTestServices(t, ctrl)

	adapterMock.EXPECT().GetUsers(gomock.Any()).Return(models.PeerList{}, nil).AnyTimes()

	chat := cs.OpenChat(context.Background(), aliceSession)
	chat.Close()
	chat.Close()

	assert.Equal(t, 2, link.subscribers(), "subscriptions belong to the services, not the chat")

	// после закрытия события в хранилище не попадают
	link.dispatch(realtime.MessageArrived{Message: msg("m1", "u2", "u1", "late")})
	assert.Equal(t, 0, chat.Conversations.Unseen("u2"))
}

func TestClientServices_OpenChat_KeepsMessagesArrivedBeforeOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, adapterMock, link := newTestServices(t, ctrl)

	// сервер уже учёл эти сообщения в своих счётчиках
	adapterMock.EXPECT().GetUsers(gomock.Any()).
		Return(models.PeerList{Users: []models.User{bob}, UnseenByPeer: map[string]int{"u2": 2}}, nil).AnyTimes()

	// логин уже поднял соединение, а чат ещё не открыт
	link.dispatch(realtime.MessageArrived{Message: msg("m1", "u2", "u1", "early")})
	link.dispatch(realtime.MessageArrived{Message: msg("m2", "u2", "u1", "early too")})
	link.dispatch(realtime.MessageArrived{Message: msg("m3", "u2", "u9", "not ours")})

	chat := cs.OpenChat(context.Background(), aliceSession)
	defer chat.Close()

	assert.Equal(t, 2, chat.Conversations.Unseen("u2"))
	got := chat.Conversations.Messages("u2")
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m2", got[1].ID)

	// буфер опустошён, повторного воспроизведения нет
	chat.Close()
	other := cs.OpenChat(context.Background(), aliceSession)
	defer other.Close()
	assert.Empty(t, other.Conversations.Messages("u2"))
}

func TestClientServices_OpenChat_ReloginWhileOldChatAttached(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, adapterMock, link := newTestServices(t, ctrl)

	adapterMock.EXPECT().GetUsers(gomock.Any()).
		Return(models.PeerList{UnseenByPeer: map[string]int{"u3": 1}}, nil).AnyTimes()

	old := cs.OpenChat(context.Background(), aliceSession)

	// новый пользователь уже подключён, старый чат ещё открыт
	bobSession := models.Session{UserID: "u2", Token: "tok-2", User: bob}
	link.dispatch(realtime.MessageArrived{Message: msg("m1", "u3", "u2", "for bob")})
	link.dispatch(realtime.MessageArrived{Message: msg("m2", "u3", "u1", "for alice")})
	require.Len(t, old.Conversations.Messages("u3"), 1)
	assert.Equal(t, "for alice", old.Conversations.Messages("u3")[0].Text)

	old.Close()
	chat := cs.OpenChat(context.Background(), bobSession)
	defer chat.Close()

	got := chat.Conversations.Messages("u3")
	require.Len(t, got, 1)
	assert.Equal(t, "for bob", got[0].Text)

	// закрытый чат больше ничего не получает
	link.dispatch(realtime.MessageArrived{Message: msg("m3", "u3", "u1", "late")})
	assert.Len(t, old.Conversations.Messages("u3"), 1)
}

func TestClientServices_Route_BoundsPendingMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	cs, _, link := newTestServices(t, ctrl)

	for i := range maxPendingMessages + 10 {
		link.dispatch(realtime.MessageArrived{Message: msg(fmt.Sprintf("m%d", i), "u2", "u1", "x")})
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	require.Len(t, cs.pending, maxPendingMessages)
	assert.Equal(t, "m10", cs.pending[0].ID, "oldest messages are dropped first")
}
