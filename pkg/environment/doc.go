// Package environment names the deployment environments a program runs in
// and normalises their spellings.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsDevelopment() {
//		// ...
//	}
package environment
