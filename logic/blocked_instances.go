package logic

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"
	"toot_scheduler/shared"
)

// IBlockedInstances tells whether logging in with an instance is refused.
type IBlockedInstances interface {
	IsBlocked(instanceUrl string) (bool, error)
}

type blockedInstances struct {
	cfg *shared.Config
}

func NewBlockedInstances(cfg *shared.Config) IBlockedInstances {
	return &blockedInstances{cfg}
}

// IsBlocked matches the instance's host against the block list file, one host per line.
// A listed host also blocks its subdomains. A missing file blocks nothing.
func (bi *blockedInstances) IsBlocked(instanceUrl string) (bool, error) {

	if bi.cfg.BlockedInstancesFile == "" {
		return false, nil
	}
	host, err := shared.GetHostName(instanceUrl)
	if err != nil {
		return false, err
	}
	host = strings.ToLower(host)

	readFile, err := os.Open(bi.cfg.BlockedInstancesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	for fileScanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(fileScanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if host == line || strings.HasSuffix(host, "."+line) {
			return true, nil
		}
	}
	return false, fileScanner.Err()
}
