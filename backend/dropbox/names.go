package dropbox

import (
	"github.com/c2fo/storages/utils"
)

// GetValidName returns "{root}/{name}" with backslashes in name replaced by forward slashes.
func (s *Storage) GetValidName(name string) string {
	return utils.JoinRoot(s.root, name)
}

// GenerateFilename returns the name Save would be handed for filename.
func (s *Storage) GenerateFilename(filename string) string {
	return s.GetValidName(filename)
}

// GetAvailableName returns a path under the root, based on name, at which no file exists. Collisions are resolved by
// appending "(1)", "(2)", ... before the extension. The search is unbounded unless MaxNameAttempts is set.
func (s *Storage) GetAvailableName(name string) (string, error) {
	available, err := utils.AvailableName(s.remotePath(name), s.options.MaxNameAttempts, func(candidate string) (bool, error) {
		exists, err := s.Exists(candidate)
		if exists {
			s.logger.Debug("dropbox name taken", "path", candidate)
		}
		return exists, err
	})
	return available, utils.WrapNameError(err)
}

// GetAlternativeName splits the base name of p on its last '.' and returns "{stem}({index}).{ext}", ie:
// "a/b/name.txt" with index 2 becomes "a/b/name(2).txt". Names without an extension are rejected with
// storages.ErrNoExtension.
func (s *Storage) GetAlternativeName(p string, index int) (string, error) {
	return utils.AlternativeName(p, index)
}
