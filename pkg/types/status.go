package types

// StatusCode is the application-level status carried inside client
// responses. Transport errors are gRPC's concern; these codes describe
// chat semantics and are stable across releases.
type StatusCode int32

const (
	StatusSuccess                      StatusCode = 0
	StatusInvalidFunction              StatusCode = 1
	StatusInvalidArguments             StatusCode = 2
	StatusInvalidUsername              StatusCode = 3
	StatusInvalidPassword              StatusCode = 4
	StatusInvalidMessage               StatusCode = 5
	StatusInvalidAccount               StatusCode = 6
	StatusInvalidVision                StatusCode = 7
	StatusUserNameExists               StatusCode = 8
	StatusUserDoesntExist              StatusCode = 9
	StatusIncorrectPassword            StatusCode = 10
	StatusNonExistingUserCantBeDeleted StatusCode = 11
	StatusInvalidVersion               StatusCode = 12
	StatusUserAlreadyLoggedIn          StatusCode = 13
	StatusUserNotLoggedIn              StatusCode = 14
	StatusReceiverDoesntExist          StatusCode = 15
	StatusMultipleUsersOnSameSocket    StatusCode = 16
	StatusNoMessages                   StatusCode = 17
	StatusNotLeader                    StatusCode = 18
)

var statusMessages = map[StatusCode]string{
	StatusSuccess:                      "Success",
	StatusInvalidFunction:              "Invalid function",
	StatusInvalidArguments:             "Invalid arguments",
	StatusInvalidUsername:              "Invalid username",
	StatusInvalidPassword:              "Invalid password",
	StatusInvalidMessage:               "Invalid message",
	StatusInvalidAccount:               "Invalid account",
	StatusInvalidVision:                "Invalid vision",
	StatusUserNameExists:               "USER NAME ALREADY EXISTS",
	StatusUserDoesntExist:              "USER DOESN'T EXIST",
	StatusIncorrectPassword:            "INCORRECT PASSWORD",
	StatusNonExistingUserCantBeDeleted: "NON EXISTING USER CANT BE DELETED",
	StatusInvalidVersion:               "UNSUPORTED VERSION",
	StatusUserAlreadyLoggedIn:          "USER ALREADY LOGGED IN",
	StatusUserNotLoggedIn:              "USER NOT LOGGED IN: LOGIN OR SIGN UP TO USE THE CHAT",
	StatusReceiverDoesntExist:          "RECEIVER DOESN'T EXIST",
	StatusMultipleUsersOnSameSocket:    "ONLY ONE USER PER SOCKET ALLOWED",
	StatusNoMessages:                   "NO MESSAGES",
	StatusNotLeader:                    "NOT LEADER: CONNECT TO LEADER SERVER",
}

// Message returns the canonical message text for a status code. The
// texts are part of the client protocol and must not be reworded.
func (c StatusCode) Message() string {
	if msg, ok := statusMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}
