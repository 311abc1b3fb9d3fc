package handlers

// User-facing messages. The quiz flow texts match the bot's original
// behavior and are asserted by tests.
const (
	MsgStart            = "I'm a bot, please talk to me!"
	MsgChooseQuiz       = "Choose your quiz. (Admin only)"
	MsgQuizRunning      = "A quiz is already running, close it first!"
	MsgSheetSelectedFmt = "%s selected!"
	MsgSheetLoadFailed  = "Failed to load the quiz sheet, please try again."
	MsgCorrect          = "Correct!"
	MsgIncorrectFmt     = "Incorrect!, the correct answer is: %s"
	MsgAlreadyAttempted = "You can only attempt once!"
	MsgNoQuizToStop     = "No quiz was there to stop :p"
	MsgQuizCancelled    = "Quiz cancelled."
	MsgNoActiveQuiz     = "No quiz is running right now."
	MsgStaleButton      = "This button belongs to an old quiz."
	MsgNotAuthorized    = "Only quizmasters can do that."
	MsgScoreboardHeader = "*Quiz Over*! \n*ScoreBoard*: \n\n"

	MsgMasterAddedFmt    = "Successfully added %d to database."
	MsgMasterExistsFmt   = "%d Already in database."
	MsgMasterRemovedFmt  = "Successfully removed %d from database."
	MsgMasterMissingFmt  = "%d is not in database."
	MsgMastersEmpty      = "No quizmasters registered yet."
	MsgMastersHeader     = "Registered quizmasters:"
	MsgInviteFmt         = "Share this link to grant quizmaster access (valid 24h):\n%s"
	MsgInviteInvalid     = "This invite link is invalid or has expired."
	MsgInviteRedeemedFmt = "Welcome aboard! %d is now a quizmaster."

	// Button labels
	BtnStart = "start"
	BtnNext  = "Next (Admin Only)"
)
