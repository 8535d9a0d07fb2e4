// Package memorybrowser provides an in-memory harrier.Browser. It is meant
// for tests and for driving a router without a DOM:
//
//	browser := memorybrowser.New("https://example.com/")
//	router := harrier.NewRouter(browser)
//	router.Get("/users/:id", showUser)
//	_ = router.Listen()
//
//	browser.Click("/users/42")
//	browser.Back()
package memorybrowser
