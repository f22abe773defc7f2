/*
Package mem is an in-memory implementation of storages.Storage.

It keeps every file in a map guarded by a mutex, so it is safe for concurrent use and disappears with the process.
It is meant for tests and local development of code written against storages.Storage.

Usage

	st, err := mem.New(mem.WithRootPath("/media"), mem.WithBaseURL("http://localhost:8080/files"))
	if err != nil {
	    return err
	}
	name, err := st.Save("avatars/me.png", f)

Storage is also an http.Handler that serves file content at the links URL returns:

	http.Handle("/files/", st)

Folders

Like Dropbox, folders exist on their own: saving "a/b/c.txt" creates "a" and "a/b", and they remain after the file is
deleted. Deleting a folder deletes everything beneath it.
*/
package mem
