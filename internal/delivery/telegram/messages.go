// messages.go contains message templates for Telegram.

package telegram

const (
	msgWelcome = "Vocabulary Practice Bot\n\n" +
		"Upload a CSV file with a \"word\" column (and optionally a \"meaning\" column), then:\n\n" +
		"/study — look at random words\n" +
		"/quiz — take a multiple-choice test\n" +
		"/table — see what is loaded\n" +
		"/enrich — fill missing meanings from a dictionary\n" +
		"/help — full command list"

	msgHelp = "Commands:\n\n" +
		"/study — show a random word with its meaning\n" +
		"/quiz — start a test with the default number of questions\n" +
		"/quiz 15 — start a test with 15 questions\n" +
		"/quiz cat, dog — test exactly these words\n" +
		"/table — summary of the loaded table\n" +
		"/enrich — look up missing meanings\n" +
		"/cancel — abandon the current test\n\n" +
		"Send a CSV document at any time to replace the table."

	msgNoTable = "No vocabulary table loaded yet. Send a CSV file with a \"word\" column first."

	msgUnknownCommand = "Unknown command. Try /help."

	msgNotCSV        = "That doesn't look like a CSV file. Please send a .csv document."
	msgUploadFailed  = "Couldn't read the file. Please try again."
	msgMissingWord   = "The CSV must contain a \"word\" column."
	msgTableEmpty    = "The table has no usable rows."
	msgNoMeanings    = "Every row is missing a meaning. Run /enrich to fill them in, or upload a table with a \"meaning\" column."
	msgQuizActive    = "A test is already in progress. Answer the remaining questions or /cancel it."
	msgNoActiveQuiz  = "No test in progress. Start one with /quiz."
	msgQuizCancelled = "Test cancelled."
	msgEnriching     = "Looking up missing meanings, this may take a moment..."

	msgQuizInvalidCount = "The question count must be a positive number."
	msgQuizNoMatches    = "None of those words are in the table."
	msgQuizFailed       = "Couldn't generate a test. Try again later."

	msgInternalError = "Something went wrong. Try again later."
)
