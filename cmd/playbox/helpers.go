package main

import "time"

// timeRounding keeps durations in command output readable.
const timeRounding = 10 * time.Millisecond
