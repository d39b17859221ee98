package game

import (
	"github.com/google/uuid"
)

// Registry は稼働中の全セッションを所有します。
// サーバーはシングルプロセス・逐次処理のため、ここにロックは不要
type Registry struct {
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Create は作成者をRedとして新しいセッションを割り当てます。
// UUID衝突は理論上のみだが、念のため再生成でリトライする
func (r *Registry) Create(creator *Player) (string, *Session) {
	id := uuid.New().String()
	for {
		if _, exists := r.sessions[id]; !exists {
			break
		}
		id = uuid.New().String()
	}
	session := NewSession(id, creator)
	r.sessions[id] = session
	return id, session
}

// Get はIDでセッションを検索します
func (r *Registry) Get(id string) (*Session, bool) {
	session, ok := r.sessions[id]
	return session, ok
}

// Join は2人目のプレイヤーを既存セッションに参加させます
func (r *Registry) Join(id string, p *Player) (*Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := session.Join(p); err != nil {
		return nil, err
	}
	return session, nil
}

// Remove はセッションを削除します。存在しないIDは何もしない（冪等）
func (r *Registry) Remove(id string) {
	delete(r.sessions, id)
}

// FindByParticipant は参加者IDからセッションを逆引きします。
// 切断時にクライアントがゲームIDを送れないケースの解決に使う
func (r *Registry) FindByParticipant(userID uint) (string, *Session, bool) {
	for id, session := range r.sessions {
		if session.HasPlayer(userID) {
			return id, session, true
		}
	}
	return "", nil, false
}

// Len は稼働中のセッション数を返します
func (r *Registry) Len() int {
	return len(r.sessions)
}
