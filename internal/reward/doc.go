// Package reward converts correct-answer events into sticker unlocks and
// big-reward celebrations. The engine is pure state-machine logic; durable
// storage goes through the Store port so the engine stays testable.
package reward
