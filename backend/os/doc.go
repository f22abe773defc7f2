/*
Package os is a local file system implementation of storages.Storage.

Every name is a slash-separated path under a location directory on disk:

	st, err := os.New(os.WithLocation("/var/www/media"), os.WithBaseURL("https://example.com/media"))
	if err != nil {
	    return err
	}
	name, err := st.Save("avatars/me.png", f) // "/avatars/me.png", stored at /var/www/media/avatars/me.png

Save creates files exclusively, so concurrent saves under the same name end up under different names instead of
overwriting one another.

Storage is an http.Handler serving the links URL returns, for programs without a web server in front of the location.

Access and creation times come from the file system where it records them, and fall back to the modification time
elsewhere.
*/
package os
