package static

import "html/template"

var (
	// Part1 - шапка страницы: слева форма и график, справа логи разбиения
	Part1 = `
<!DOCTYPE html>
<html>
<head>
    <title>Разбиение по Вороному</title>
    <style>
        body { margin: 0; background: #181a1b; color: #c8c8c8; font-family: Consolas, monospace; }
        main { display: grid; grid-template-columns: minmax(420px, 3fr) 2fr; height: 100vh; }
        section { padding: 12px; overflow: auto; }
        section + section { border-left: 3px solid #3a3d3f; background: #1c1e1f; }
        form { display: grid; grid-template-columns: max-content 160px; gap: 6px 12px; align-items: center; }
        form input, form select { background: #26292a; color: inherit; border: 1px solid #3a3d3f; padding: 4px; }
        form input[type="submit"] { grid-column: 2; cursor: pointer; }
        a { color: #8fd19e; }
        #logs { white-space: pre-wrap; word-break: break-all; font-size: 12px; }
    </style>
</head>
<body>
<main>
    <section>
`

	// Form - форма параметров, значения подставляются из последнего запроса
	Form = template.Must(template.New("form").Parse(`
                <h2>Параметры разбиения</h2>
                <form method="POST" action="/">
                    <label for="width">Ширина (W):</label>
                    <input type="number" id="width" name="width" value="{{.Width}}" min="100" max="5000">
                    <label for="height">Высота (H):</label>
                    <input type="number" id="height" name="height" value="{{.Height}}" min="100" max="5000">
                    <label for="stations">Количество станций (n):</label>
                    <input type="number" id="stations" name="stations" value="{{.Stations}}" min="1" max="1000">
                    <label for="strategy">Расстановка станций:</label>
                    <select id="strategy" name="strategy">
                        {{range .Strategies}}<option value="{{.}}"{{if eq . $.Strategy}} selected{{end}}>{{.}}</option>{{end}}
                    </select>
                    <label for="seed">Seed (0 - случайный):</label>
                    <input type="number" id="seed" name="seed" value="{{.Seed}}">
                    <label for="margin">Отступ внешней рамки:</label>
                    <input type="number" id="margin" name="margin" value="{{.Margin}}" min="0" step="any">
                    <label for="thickness">Толщина осколков:</label>
                    <input type="number" id="thickness" name="thickness" value="{{.Thickness}}" min="0" step="any">
                    <input type="submit" value="Построить">
                </form>
                <p>
                    <a href="{{.ShardsURL}}">Осколки диаграммы (STL)</a> |
                    <a href="{{.CubeURL}}">Расколотый куб (STL)</a>
                </p>
    `))

	Part2 = `
    </section>
    <section>
        <h2>Логи</h2>
        <div id="logs">`

	Part3 = `</div>
    </section>
</main>
</body>
</html>
`
)
