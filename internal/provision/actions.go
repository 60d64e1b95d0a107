package provision

// Indirection layer to allow stubbing in tests

var (
	fnInstallDeps  = installDeps
	fnEnsureSpeech = ensureSpeechModel
	fnEnsureDetect = ensureDetectionModel
	fnRunAll       = runAll
	fnVerify       = verifyResources

	fnRunCmd = runCmdVerbose
)
