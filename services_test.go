package injector

import "sync"

type Logger struct{}

func (l *Logger) Test() string { return "test" }

type Router struct {
	Logger *Logger `inject:"$$logger"`
}

func (r *Router) Test() string { return "test" }

type Util struct {
	Logger *Logger       `inject:"$$logger"`
	Router *Router       `inject:"$$router"`
	Async  func() string `inject:"$$async"`
}

func (u *Util) Test() string { return "test" }

type Father struct{}

func (Father) SayHi() string { return "father" }

type Son struct {
	Father
}

func (Son) SayHi() string { return "son" }

type Daughter struct {
	*Father
}

type Heir struct {
	*Father `inject:"$$father"`
}

// asyncFunc starts its work in the background and returns a wait function
// that may be called any number of times.
func asyncFunc(logger *Logger) func() string {
	ch := make(chan string, 1)
	go func() { ch <- "test" }()
	return sync.OnceValue(func() string { return <-ch })
}

func asyncFunc2(logger *Logger) func() *Logger {
	ch := make(chan *Logger, 1)
	go func() { ch <- logger }()
	return sync.OnceValue(func() *Logger { return <-ch })
}

func testFunc(logger *Logger) string { return "test" }

func testFunc2(logger *Logger) *Logger { return logger }

type test3Result struct {
	Logger   *Logger
	NotFound interface{}
	Without  interface{}
}

func testFunc3(logger *Logger, notFound, without interface{}) *test3Result {
	return &test3Result{
		Logger:   logger,
		NotFound: notFound,
		Without:  without,
	}
}

func paramsFunc(in struct {
	Params

	Logger *Logger `inject:"$$logger"`
}) *Logger {
	return in.Logger
}

var instance1 = map[string]interface{}{
	"name": "xiaoming",
	"age":  18,
	"address": map[string]string{
		"detail": "shanghai",
	},
}
