/*
Package storages provides the storage contract a web application uses to keep uploaded and generated
files, along with backends that satisfy it against remote file-hosting services.

# Philosophy

Application code should be able to read, write, list and delete files without caring whether they live on a local
disk or in a hosted service. Each backend translates the fixed contract in Storage into calls against its service so
that, once constructed, callers never branch on where a file actually lives.

The contract is deliberately small:
  - Open and Save move file content in and out
  - Exists, Size, ListDir and the *Time methods describe what is stored
  - URL hands out links a browser can follow directly
  - GetValidName, GetAvailableName and GenerateFilename decide where content is stored

# Content

Save accepts any io.Reader. Readers that are not already a Content are wrapped with AsContent so a backend can rely on
knowing the total size and the current read offset while it uploads:

	f := storages.NewFile("report.csv", bytes.NewReader(data))
	stored, err := store.Save("reports/report.csv", f)

# Backends

  - github.com/c2fo/storages/backend/dropbox - Dropbox, via github.com/dropbox/dropbox-sdk-go-unofficial/v6

Conformance tests every backend is expected to pass live in github.com/c2fo/storages/backend/testsuite.
*/
package storages
