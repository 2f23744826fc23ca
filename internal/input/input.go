// internal/input/input.go
package input

// State это снимок ввода за один кадр. Ядро симуляции читает его
// и ничего не знает о клавиатуре: опрос делают фронтенды в cmd.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	// Fire действует, пока клавиша удерживается.
	Fire bool
	// Confirm срабатывает по фронту нажатия.
	Confirm bool
}
