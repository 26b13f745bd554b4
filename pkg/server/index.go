package server

// indexHTML is the demo page: a toggle and a stepper wired to /ws.
// Every gesture is answered with the settled state, vetoed or not, so
// the page only ever renders what the engine settled on.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>steer demo</title>
<style>
  body { font-family: sans-serif; max-width: 32rem; margin: 3rem auto; }
  .widget { border: 1px solid #ccc; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
  button { margin-right: .5rem; }
  .on { color: #0a0; font-weight: bold; }
  .off { color: #a00; font-weight: bold; }
</style>
</head>
<body>
<h1>steer demo</h1>

<div class="widget">
  <h2>Toggle <small>(limit reducer: 4 clicks, then only force works)</small></h2>
  <p>State: <span id="toggle-state" class="off">off</span></p>
  <button onclick="send('toggle','click')">Toggle</button>
  <button onclick="send('toggle','force')">Force toggle</button>
  <button onclick="send('toggle','reset')">Reset</button>
</div>

<div class="widget">
  <h2>Stepper <small>(clamped 0&ndash;10)</small></h2>
  <p>Value: <span id="stepper-value">0</span></p>
  <button onclick="send('stepper','increment')">+</button>
  <button onclick="send('stepper','decrement')">&minus;</button>
  <button onclick="send('stepper','reset')">Reset</button>
  <input id="stepper-input" size="4">
  <button onclick="send('stepper','set',document.getElementById('stepper-input').value)">Set</button>
</div>

<script>
const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
function send(widget, gesture, value) {
  ws.send(JSON.stringify({widget: widget, gesture: gesture, value: value || ''}));
}
ws.onmessage = function (ev) {
  const msg = JSON.parse(ev.data);
  if (msg.widget === 'toggle') {
    const el = document.getElementById('toggle-state');
    el.textContent = msg.state.on ? 'on' : 'off';
    el.className = msg.state.on ? 'on' : 'off';
  } else if (msg.widget === 'stepper') {
    document.getElementById('stepper-value').textContent = msg.state.value;
  }
};
</script>
</body>
</html>
`
