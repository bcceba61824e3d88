package game

// Session is a completed play session as submitted by the client: two named
// players, cumulative round counters, and the concatenated move history of
// every round played. Sessions are immutable once created; there is no update
// path.
type Session struct {
	Player1Name      string   `json:"player1Name" bson:"player1Name"`
	Player2Name      string   `json:"player2Name" bson:"player2Name"`
	Player1Wins      int      `json:"player1Wins" bson:"player1Wins"`
	Player2Wins      int      `json:"player2Wins" bson:"player2Wins"`
	Draws            int      `json:"draws" bson:"draws"`
	GameHistory      []Board  `json:"gameHistory" bson:"gameHistory"`
	MoveDescriptions []string `json:"moveDescriptions" bson:"moveDescriptions"`
}

// StoredSession is a persisted session record. The id is the store's key in
// hex form; both timestamps are ISO-8601 and set equal at creation.
type StoredSession struct {
	ID        string `json:"_id" bson:"-"`
	Session   `bson:",inline"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}
