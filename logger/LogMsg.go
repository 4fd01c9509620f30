package logger

const MatchStartMsg = "Match started: %s vs %s, first to %d"
const GoalMsg = "%s scores! %d : %d"
const WinnerMsg = "%s wins the match %d : %d"

const PlayerQuitMsg = "Player quit the match"
const ScreenInitFailedMsg = "Failed to initialize terminal screen: %v"
const AudioUnavailableMsg = "Audio unavailable, continuing without sound: %v"
const RenderFailedMsg = "Render failed: %v"
const GameCrashedMsg = "Game crashed: %v"
