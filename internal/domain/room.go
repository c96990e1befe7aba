package domain

type RoomID string

// NewRoomID derives the room id of a pair. Ids are unique per connection,
// so the pair is unique for as long as both connections live.
func NewRoomID(requester, candidate ParticipantID) RoomID {
	return RoomID(string(requester) + "_" + string(candidate))
}
