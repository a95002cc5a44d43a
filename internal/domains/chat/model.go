package chat

import (
	"time"
)

// GlobalChatID is the sentinel id of the process-wide public chat, seeded
// at startup.
const GlobalChatID = "GLOBAL_CHAT"

// SystemParticipant is the placeholder participant id of the global chat.
const SystemParticipant = "SYSTEM"

// Chat is a direct-message channel between an unordered pair of
// principals. The pair is stored normalized (lexicographically smaller id
// in User1ID) and is unique, so at most one chat exists per pair.
type Chat struct {
	ID        string    `db:"id" json:"id"`
	User1ID   string    `db:"user1_id" json:"user1Id"`
	User2ID   string    `db:"user2_id" json:"user2Id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Message is a single chat message, ordered by creation time within its
// chat.
type Message struct {
	ID        string    `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	SenderID  string    `db:"sender_id" json:"userId"`
	ChatID    string    `db:"chat_id" json:"chatId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NormalizePair orders two participant ids so the pair is
// order-independent: NormalizePair(a,b) == NormalizePair(b,a).
func NormalizePair(a, b string) (user1ID, user2ID string) {
	if a < b {
		return a, b
	}
	return b, a
}
