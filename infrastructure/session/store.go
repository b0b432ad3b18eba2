package session

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
	"github.com/vfg2006/ads-excel-utilities/pkg/utils"
)

// DefaultSnapshotLimit é quantos relatórios diários cada sessão guarda
const DefaultSnapshotLimit = 14

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrCreateSession   = errors.New("error creating session")
)

// Session é o estado de um navegador: os snapshots diários enviados, em ordem de inserção.
// Nada é compartilhado entre sessões.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	lastSeen  time.Time
	limit     int
	snapshots []domain.DailySnapshot // o mais antigo primeiro
}

// Put guarda o snapshot do dia. Reenviar a mesma data substitui o anterior e conta
// como inserção nova. Acima do limite, os mais antigos saem primeiro; as datas
// removidas são devolvidas.
func (s *Session) Put(snapshot domain.DailySnapshot) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := snapshot.DateKey()
	kept := s.snapshots[:0]
	for _, existing := range s.snapshots {
		if existing.DateKey() != key {
			kept = append(kept, existing)
		}
	}
	s.snapshots = append(kept, snapshot)

	evicted := make([]string, 0)
	for len(s.snapshots) > s.limit {
		evicted = append(evicted, s.snapshots[0].DateKey())
		s.snapshots = s.snapshots[1:]
	}

	return evicted
}

// Snapshots devolve uma cópia dos snapshots em ordem de inserção
func (s *Session) Snapshots() []domain.DailySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.DailySnapshot, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}

func (s *Session) Infos() []domain.SnapshotInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SnapshotInfo, len(s.snapshots))
	for i, snap := range s.snapshots {
		out[i] = domain.SnapshotInfo{
			Date:       snap.DateKey(),
			SourceName: snap.SourceName,
			Products:   len(snap.Products),
			UploadedAt: snap.UploadedAt,
		}
	}
	return out
}

// Clear esvazia o cache e devolve quantos snapshots foram removidos
func (s *Session) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.snapshots)
	s.snapshots = nil
	return n
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Store mantém as sessões em memória
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
	now      func() time.Time
}

func NewStore(snapshotLimit int) *Store {
	if snapshotLimit <= 0 {
		snapshotLimit = DefaultSnapshotLimit
	}

	return &Store{
		sessions: make(map[string]*Session),
		limit:    snapshotLimit,
		now:      time.Now,
	}
}

// Create abre uma sessão nova com ID aleatório
func (s *Store) Create() (*Session, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrCreateSession, err.Error())
	}

	now := s.now()
	sess := &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		limit:     s.limit,
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	log.L.WithField("session_id", id).Debug("session: created")
	return sess, nil
}

// Get busca a sessão e marca o acesso
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "id %s", id)
	}

	sess.touch(s.now())
	return sess, nil
}

// PurgeIdle remove as sessões sem acesso há mais de maxIdle
func (s *Store) PurgeIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
