package core

import (
	"os"
	"time"
)

// PermOwnerRW is used when rewriting version-bearing files.
const PermOwnerRW os.FileMode = 0o600

// TimeoutTool bounds a delegated version-setting tool run.
const TimeoutTool = 2 * time.Minute
