package lock

import (
	"encoding/json"
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"
)

const ownerFile = "info.json"

// ErrLocked is returned by TryAcquire when another process holds the lock.
var ErrLocked = errors.New("habit data is locked by another process")

// Owner identifies the tally process holding a lock.
type Owner struct {
	User    string    `json:"user"`
	Host    string    `json:"hostname"`
	PID     int       `json:"pid"`
	Command string    `json:"command,omitempty"`
	Since   time.Time `json:"started"`
}

// currentOwner describes this process running command.
func currentOwner(command string) Owner {
	o := Owner{User: "unknown", Host: "unknown", PID: os.Getpid(), Command: command, Since: time.Now()}
	if h, err := os.Hostname(); err == nil {
		o.Host = h
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		o.User = u.Username
	} else if env := os.Getenv("USER"); env != "" {
		o.User = env
	}
	return o
}

// String reads like "sam@laptop (pid 4242, tally toggle)".
func (o Owner) String() string {
	s := o.User + "@" + o.Host + " (pid " + strconv.Itoa(o.PID)
	if o.Command != "" {
		s += ", " + o.Command
	}
	return s + ")"
}

func writeOwner(dir string, o Owner) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ownerFile), data, 0644)
}

// readOwner loads the owner record from a lock directory.
func readOwner(dir string) (Owner, error) {
	var o Owner
	data, err := os.ReadFile(filepath.Join(dir, ownerFile))
	if err != nil {
		return o, err
	}
	err = json.Unmarshal(data, &o)
	return o, err
}
